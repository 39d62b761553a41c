package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cipherstack/cipher-auth/internal/cache"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/internal/tokens"
	"github.com/cipherstack/cipher-auth/pkg/logging"
)

func blacklistKey(token string) string { return "blacklist:" + token }

// TokenService owns the access-token lifecycle: issue, verify against the
// revocation cache, revoke, and exchange refresh tokens.
type TokenService struct {
	Signer     tokens.Signer
	Cache      cache.TokenCache
	Repo       repo.GormRepo
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	UserID       string
}

// Issue signs an access token for the user. A zero ttl falls back to the
// configured default.
func (s *TokenService) Issue(userID string, ttl time.Duration) (string, time.Time, error) {
	if ttl == 0 {
		ttl = s.AccessTTL
	}
	now := time.Now()
	exp := now.Add(ttl)
	// The random jti keeps two tokens for the same user distinct even when
	// issued within the same second; revocation is keyed by the raw token
	// string, so sessions must never collide.
	claims := tokens.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	raw, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, exp, nil
}

// Verify checks presence, revocation state, then signature and expiry, in
// that order, and returns the embedded user id. It never mutates the cache.
func (s *TokenService) Verify(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", &AuthenticationError{Reason: "authorization header missing or malformed"}
	}

	revoked, err := s.Cache.Exists(ctx, blacklistKey(raw))
	if err != nil {
		return "", err
	}
	if revoked {
		return "", &AuthenticationError{Reason: "token revoked"}
	}

	claims, err := s.Signer.Verify(raw)
	if err != nil {
		return "", &AuthenticationError{Reason: "invalid or expired token"}
	}
	return claims.UserID, nil
}

// Revoke blacklists the token for its remaining lifetime. The cache entry
// expires together with the token, so revoking an already-expired token is
// a no-op and revoking twice just refreshes the same entry.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	claims, err := s.Signer.Verify(raw)
	if err != nil {
		return &AuthenticationError{Reason: "invalid or expired token"}
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.Cache.Set(ctx, blacklistKey(raw), "true", ttl); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("token_revoked", "user_id", claims.UserID, "ttl_s", int64(ttl.Seconds()))
	return nil
}

// IssueRefresh mints an opaque refresh token and persists it.
func (s *TokenService) IssueRefresh(ctx context.Context, userID string) (string, time.Time, error) {
	token := uuid.NewString()
	exp := time.Now().Add(s.RefreshTTL)
	if err := s.Repo.SaveRefreshToken(ctx, token, userID, exp); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Refresh exchanges a stored refresh token for a new token pair. The
// consumed token is rotated out: it is deleted in the same transaction that
// validates it, so replay fails.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, &AuthenticationError{Reason: "no refresh token provided"}
	}

	record, err := s.Repo.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		if repo.NotFound(err) || errors.Is(err, repo.ErrRefreshExpired) {
			return nil, &AuthenticationError{Reason: "refresh token expired or revoked"}
		}
		return nil, err
	}

	access, accessExp, err := s.Issue(record.UserID, 0)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.IssueRefresh(ctx, record.UserID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		UserID:       record.UserID,
	}, nil
}
