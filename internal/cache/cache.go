// Package cache provides the time-boxed key-value store backing token
// revocation and pending password resets. Entries expire server-side; the
// callers never sweep.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("cache: key not found")

type TokenCache interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetDel reads and removes the key in one atomic step, so concurrent
	// consumers of the same key see exactly one success.
	GetDel(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
