package memory

import (
	"context"
	"sync"
	"time"

	"freightgate/internal/core/ports"
)

type rateWindow struct {
	count   int64
	resetAt time.Time
}

// RateCounter is a fixed-window counter over a mutex-guarded map. Window
// state that outlives its reset time is discarded on the next increment.
type RateCounter struct {
	mu      sync.Mutex
	windows map[string]rateWindow
	clock   ports.Clock
}

// NewRateCounter creates an in-process rate counter.
func NewRateCounter(clock ports.Clock) *RateCounter {
	return &RateCounter{
		windows: make(map[string]rateWindow),
		clock:   clock,
	}
}

// Incr bumps the counter for a key and returns the count within the current
// window, 1 for a fresh window.
func (c *RateCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	w, ok := c.windows[key]
	if !ok || now.After(w.resetAt) {
		w = rateWindow{count: 0, resetAt: now.Add(window)}
	}

	w.count++
	c.windows[key] = w
	return w.count, nil
}
