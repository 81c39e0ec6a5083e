package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Cache defines the key-value storage port. Implemented by Redis in
// production and by miniredis-backed adapters in tests.
type Cache interface {
	// Get retrieves a value by key. Returns ErrKeyNotFound if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL.
	// A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Exists reports whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache backend is reachable.
	Ping(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
