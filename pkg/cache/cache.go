// Package cache stores fetched documents between runs.
//
// Caching is opt-in: the default [NullCache] never stores anything, so a run
// without a cache always reads the source. [FileCache] keeps entries under a
// local directory and [RedisCache] shares them through a Redis server.
//
// Keys are opaque strings; callers derive them with [Key]. Values are raw
// bytes with an optional time-to-live.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the cached value and true on a hit. Expired entries are
	// reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long a fetched document stays cached.
const DefaultTTL = time.Hour
