package query

import (
	"context"
	"time"
)

// Store holds encoded query results.
type Store interface {
	// Get returns the value for key. A missing or expired key returns
	// (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl. A zero ttl uses the store's default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Clear removes every key owned by the store.
	Clear(ctx context.Context) error

	// Close releases the store.
	Close() error
}

// ErrStoreClosed is returned by stores after Close.
type ErrStoreClosed struct{}

func (ErrStoreClosed) Error() string {
	return "query: store closed"
}
