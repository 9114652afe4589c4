package core

import "time"

// Clock reports monotonic time since an arbitrary origin.
// The simulation reads time only through this interface so tests can drive it.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock starting at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced explicitly by the caller.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
