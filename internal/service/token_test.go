package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.NewString()

	raw, exp, err := env.tokens.Issue(userID, 0)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, time.Second)

	got, err := env.tokens.Verify(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Issue_DistinctTokensForSameUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	userID := uuid.NewString()

	first, _, err := env.tokens.Issue(userID, 0)
	require.NoError(t, err)
	second, _, err := env.tokens.Issue(userID, 0)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_Verify_EmptyToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.tokens.Verify(context.Background(), "")
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)
}

func TestTokenService_Verify_GarbageToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.tokens.Verify(context.Background(), "not-a-jwt")
	require.Error(t, err)
	var authnErr *AuthenticationError
	require.ErrorAs(t, err, &authnErr)
	assert.Equal(t, "invalid or expired token", authnErr.Reason)
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	raw, _, err := env.tokens.Issue(uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	_, err = env.tokens.Verify(ctx, raw)
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)
}

func TestTokenService_Revoke_BlocksVerify(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.NewString()

	raw, _, err := env.tokens.Issue(userID, 0)
	require.NoError(t, err)

	require.NoError(t, env.tokens.Revoke(ctx, raw))

	_, err = env.tokens.Verify(ctx, raw)
	require.Error(t, err)
	var authnErr *AuthenticationError
	require.ErrorAs(t, err, &authnErr)
	assert.Equal(t, "token revoked", authnErr.Reason)
}

func TestTokenService_Revoke_Idempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	raw, _, err := env.tokens.Issue(uuid.NewString(), 0)
	require.NoError(t, err)

	require.NoError(t, env.tokens.Revoke(ctx, raw))
	require.NoError(t, env.tokens.Revoke(ctx, raw))
}

func TestTokenService_Revoke_ExpiredTokenIsNoOp(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	raw, _, err := env.tokens.Issue(uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	// Signature check inside Revoke already rejects the expired token.
	err = env.tokens.Revoke(ctx, raw)
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)

	exists, err := env.mem.Exists(ctx, "blacklist:"+raw)
	require.NoError(t, err)
	assert.False(t, exists, "expired token must never enter the revocation cache")
}

func TestTokenService_Refresh_RotatesAndBlocksReplay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.NewString()

	refresh, _, err := env.tokens.IssueRefresh(ctx, userID)
	require.NoError(t, err)

	pair, err := env.tokens.Refresh(ctx, refresh)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, userID, pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, refresh, pair.RefreshToken)

	got, err := env.tokens.Verify(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// The consumed token is gone; replay fails.
	_, err = env.tokens.Refresh(ctx, refresh)
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)

	// The rotated-in token works.
	_, err = env.tokens.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestTokenService_Refresh_ExpiredToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.NewString()

	token := uuid.NewString()
	require.NoError(t, env.rp.SaveRefreshToken(ctx, token, userID, time.Now().Add(-time.Hour)))

	_, err := env.tokens.Refresh(ctx, token)
	require.Error(t, err)
	var authnErr *AuthenticationError
	require.ErrorAs(t, err, &authnErr)
	assert.Equal(t, "refresh token expired or revoked", authnErr.Reason)
}

func TestTokenService_Refresh_UnknownToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.tokens.Refresh(context.Background(), uuid.NewString())
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)
}
