// Package cache declares the cache used for lazily loaded session data.
package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned if the key is unknown and no loader is configured.
var ErrCacheMiss = errors.New("cache miss")

// Cache hands out shared values. Callers must not modify them.
type Cache[K comparable, V any] interface {
	// Get returns the cached value, loading it on first access or after expiration.
	Get(ctx context.Context, key K) (*V, error)
	Invalidate(ctx context.Context, key K)
	// Len is the number of currently cached entries
	Len() int
}
