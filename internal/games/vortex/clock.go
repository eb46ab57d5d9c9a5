package vortex

import "math"

// Clock accumulates simulated survival time.
type Clock struct {
	elapsed float64
}

// Advance adds dt seconds.
func (c *Clock) Advance(dt float64) {
	c.elapsed += dt
}

// Elapsed returns the survival time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Seconds returns the whole seconds survived.
func (c *Clock) Seconds() int {
	// Sixty 1/60s steps sum to 0.9999999999999999, not 1.
	return int(math.Floor(c.elapsed + 1e-9))
}

// Reset sets the clock back to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}
