package ports

import (
	"context"
	"time"
)

// Clock supplies the current time. Injected so tests can simulate window
// rollover and expiry without real sleeps.
type Clock func() time.Time

// ReplayCache stores serialized responses for idempotent replay of reserve
// and create actions.
//
// The cache is best-effort, not a distributed lock: the lookup and the store
// are separate operations, so two racing requests bearing the same key may
// both execute the underlying carrier and persistence calls. This matches the
// original deployment's semantics and is an accepted tradeoff.
type ReplayCache interface {
	// Get returns the cached response body for a key, with ok=false on miss.
	Get(ctx context.Context, key string) (body string, ok bool, err error)

	// Set stores a response body under a key for the given TTL.
	Set(ctx context.Context, key string, body string, ttl time.Duration) error
}

// RateCounter implements a fixed-window request counter shared across
// gateway instances. Concurrent increments may under-count by one or two
// under race; the limit is soft by design.
type RateCounter interface {
	// Incr increments the counter for a key within the current window and
	// returns the post-increment count. A fresh window starts at 1.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
