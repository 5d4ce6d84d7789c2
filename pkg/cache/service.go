package cache

import (
	"context"
	"time"
)

// Service is the cache used by the worker layer to short-circuit repeated
// API reads.
type Service interface {
	// Set stores a value under key for the given TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Get retrieves a value by key. Expired or missing keys return ErrMiss.
	Get(ctx context.Context, key string) (interface{}, error)

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Stats returns hit/miss counters and the current key count.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats summarizes cache behavior since construction.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Keys   int64 `json:"keys"`
}
