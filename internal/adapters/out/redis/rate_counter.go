package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateCounter implements fixed-window counting with INCR plus a window-sized
// TTL set when the counter is first created. The window resets when the key
// expires, matching the fixed-window contract rather than a sliding one.
type RateCounter struct {
	client *redis.Client
}

// NewRateCounter creates a Redis-backed rate counter.
func NewRateCounter(client *redis.Client) *RateCounter {
	return &RateCounter{client: client}
}

// Incr bumps the counter for a key and returns the count within the current
// window, 1 for a fresh window.
func (c *RateCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
