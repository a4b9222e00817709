// Package testutil provides deterministic helpers for the conformance
// harness: a resettable logical clock for trace sequence numbers and run
// token generators (fixed for golden comparison, UUIDv7 for CLI runs).
package testutil

import "sync"

// Clock is a thread-safe monotonic logical clock. The harness stamps every
// trace event from one Clock so identical scenarios always produce
// identical sequence numbers.
type Clock struct {
	mu  sync.Mutex
	seq int64
}

// NewClock creates a clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next increments and returns the next sequence number.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset sets the clock back to 0 for reuse across scenario runs.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
