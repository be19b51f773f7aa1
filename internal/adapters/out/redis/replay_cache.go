// Package redis backs the gateway's shared request caches with Redis, so
// idempotency replay and rate counting hold across gateway instances.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReplayCache stores successful response bodies keyed by idempotency hash.
// Lookups and stores are best-effort by contract: Redis being down must never
// take label creation down with it.
type ReplayCache struct {
	client *redis.Client
}

// NewReplayCache creates a Redis-backed replay cache.
func NewReplayCache(client *redis.Client) *ReplayCache {
	return &ReplayCache{client: client}
}

// Get returns the cached response body for a key, ok false on a miss.
func (c *ReplayCache) Get(ctx context.Context, key string) (string, bool, error) {
	body, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	return body, true, nil
}

// Set stores a response body under a key for the given window.
func (c *ReplayCache) Set(ctx context.Context, key, body string, ttl time.Duration) error {
	return c.client.Set(ctx, key, body, ttl).Err()
}
