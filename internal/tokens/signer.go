package tokens

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token: the subject user and the registered
// expiry. Nothing else is embedded.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Signer produces and checks signed credentials. Verify returns an error
// for bad signatures and for expired tokens alike; callers do not get to
// distinguish the two.
type Signer interface {
	Sign(claims Claims) (string, error)
	Verify(raw string) (*Claims, error)
}

// HS256Signer signs with a single HMAC-SHA256 secret fixed for the process
// lifetime.
type HS256Signer struct {
	secret []byte
}

func NewHS256Signer(secret []byte) *HS256Signer {
	return &HS256Signer{secret: secret}
}

func (s *HS256Signer) Sign(claims Claims) (string, error) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(s.secret)
}

func (s *HS256Signer) Verify(raw string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}
