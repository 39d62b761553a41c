package service

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/events"
	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/pkg/hash"
	"github.com/cipherstack/cipher-auth/pkg/logging"
)

// AuthService covers signup, signin and logout on top of the token service.
type AuthService struct {
	Repo   repo.GormRepo
	Tokens *TokenService
	Events *events.Producer
}

type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if email == "" || password == "" {
		return nil, &ValidationError{Reason: "email and password are required"}
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if err == repo.ErrUserExists {
			l.Warn("signup_conflict", "email", email)
			return nil, &ConflictError{Reason: "email already registered"}
		}
		return nil, err
	}

	access, _, err := s.Tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, events.TypeUserSignedUp, user.ID, map[string]string{"user_id": user.ID})
	l.Info("signup_successful", "user_id", user.ID)

	return &Session{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: access,
	}, nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	if email == "" || password == "" {
		return nil, &AuthenticationError{Reason: "invalid email or password"}
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if repo.NotFound(err) {
			l.Warn("signin_failed", "reason", "unknown email")
			return nil, &AuthenticationError{Reason: "invalid email or password"}
		}
		return nil, err
	}
	if !hash.CheckPassword(user.HashedPassword, password) {
		l.Warn("signin_failed", "reason", "bad password", "user_id", user.ID)
		return nil, &AuthenticationError{Reason: "invalid email or password"}
	}

	access, _, err := s.Tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.Tokens.IssueRefresh(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, events.TypeUserSignedIn, user.ID, map[string]string{"user_id": user.ID})
	l.Info("signin_successful", "user_id", user.ID)

	return &Session{
		UserID:       user.ID,
		Email:        user.Email,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Logout blacklists the presented access token for the rest of its life.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if err := s.Tokens.Revoke(ctx, accessToken); err != nil {
		return err
	}
	s.Events.Publish(ctx, events.TypeTokenRevoked, accessToken, nil)
	return nil
}
