package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cipherstack/cipher-auth/internal/cache"
	"github.com/cipherstack/cipher-auth/internal/events"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/pkg/hash"
	"github.com/cipherstack/cipher-auth/pkg/logging"
)

// ResetMessage is returned for every reset request so that account
// existence cannot be inferred from the response.
const ResetMessage = "If that email is registered, a reset link has been sent."

const resetTokenTTL = time.Hour

func resetKey(token string) string { return "reset:" + token }

// ResetService runs the password-reset flow: time-boxed single-use tokens
// held in the cache, mapping token to user id.
type ResetService struct {
	Repo   repo.GormRepo
	Cache  cache.TokenCache
	Events *events.Producer
}

// RequestReset mints a reset token for the account, if one exists. An
// unknown email is not an error. Token delivery is out of band; until a
// mailer is wired the token is only logged.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	l := logging.FromContext(ctx).With("svc", "reset.request")

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if repo.NotFound(err) {
			l.Info("reset_requested_unknown_email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.Cache.Set(ctx, resetKey(token), user.ID, resetTokenTTL); err != nil {
		return err
	}

	// TODO: deliver via mailer once one exists.
	l.Info("reset_token_issued", "user_id", user.ID, "token", token)
	return nil
}

// ConsumeReset burns the token and updates the password. The atomic
// read-and-delete claims the token first, so two concurrent consumers see
// exactly one success, and a second attempt inside the TTL window fails.
func (s *ResetService) ConsumeReset(ctx context.Context, resetToken, newPassword string) error {
	l := logging.FromContext(ctx).With("svc", "reset.consume")

	if resetToken == "" || newPassword == "" {
		return &AuthenticationError{Reason: "invalid or expired reset token"}
	}

	userID, err := s.Cache.GetDel(ctx, resetKey(resetToken))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			l.Warn("reset_failed", "reason", "unknown or expired token")
			return &AuthenticationError{Reason: "invalid or expired reset token"}
		}
		return err
	}

	hashed, err := hash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	s.Events.Publish(ctx, events.TypePasswordReset, userID, map[string]string{"user_id": userID})
	l.Info("password_reset", "user_id", userID)
	return nil
}
