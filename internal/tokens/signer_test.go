package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(userID string, exp time.Time) Claims {
	return Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestHS256Signer_RoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewHS256Signer([]byte("test-secret"))
	userID := uuid.NewString()
	exp := time.Now().Add(15 * time.Minute).UTC()

	raw, err := signer.Sign(testClaims(userID, exp))
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestHS256Signer_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewHS256Signer([]byte("test-secret"))
	raw, err := signer.Sign(testClaims(uuid.NewString(), time.Now().Add(time.Hour)))
	require.NoError(t, err)

	other := NewHS256Signer([]byte("other-secret"))
	claims, err := other.Verify(raw)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestHS256Signer_ExpiredToken(t *testing.T) {
	t.Parallel()

	signer := NewHS256Signer([]byte("test-secret"))
	raw, err := signer.Sign(testClaims(uuid.NewString(), time.Now().Add(-time.Minute)))
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestHS256Signer_RejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must not pass, whatever its claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims(uuid.NewString(), time.Now().Add(time.Hour)))
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	signer := NewHS256Signer([]byte("test-secret"))
	claims, err := signer.Verify(raw)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestHS256Signer_GarbageInput(t *testing.T) {
	t.Parallel()

	signer := NewHS256Signer([]byte("test-secret"))
	claims, err := signer.Verify("not.a.jwt")
	require.Error(t, err)
	assert.Nil(t, claims)
}
