// Package memory provides in-process fallbacks for the shared request caches,
// used when no Redis address is configured. State is per-instance: replay and
// rate limiting then only hold within one gateway process.
package memory

import (
	"context"
	"sync"
	"time"

	"freightgate/internal/core/ports"
)

type replayEntry struct {
	body      string
	expiresAt time.Time
}

// ReplayCache is a mutex-guarded map with lazy expiry.
type ReplayCache struct {
	mu      sync.Mutex
	entries map[string]replayEntry
	clock   ports.Clock
}

// NewReplayCache creates an in-process replay cache.
func NewReplayCache(clock ports.Clock) *ReplayCache {
	return &ReplayCache{
		entries: make(map[string]replayEntry),
		clock:   clock,
	}
}

// Get returns the cached response body for a key, ok false on a miss.
func (c *ReplayCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}

	if c.clock().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}

	return entry.body, true, nil
}

// Set stores a response body under a key for the given window.
func (c *ReplayCache) Set(_ context.Context, key, body string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = replayEntry{body: body, expiresAt: c.clock().Add(ttl)}
	return nil
}
