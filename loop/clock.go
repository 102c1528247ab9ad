package loop

import (
	"math"
	"time"
)

// Clock turns variable frame times into a whole number of fixed steps and
// the fraction of a step left over.
type Clock struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	dropped  int64
}

// NewClock returns a clock with the given fixed step. At most maxSteps
// steps are handed out per Advance; a maxSteps of zero or less removes the
// cap. Panics if step is not positive.
func NewClock(step time.Duration, maxSteps int) *Clock {
	if step <= 0 {
		panic("loop: clock step must be positive")
	}
	return &Clock{
		step:     step,
		maxSteps: maxSteps,
	}
}

// Advance adds elapsed time and returns how many fixed steps are due.
// When more steps are due than the cap allows, the backlog is dropped and
// only the sub-step remainder is kept.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}

	steps := int(c.acc / c.step)
	if c.maxSteps > 0 && steps > c.maxSteps {
		c.dropped += int64(steps - c.maxSteps)
		c.acc %= c.step
		return c.maxSteps
	}

	c.acc -= time.Duration(steps) * c.step
	return steps
}

// Lag is the progress into the next, not yet run, fixed step in [0, 1).
func (c *Clock) Lag() float32 {
	// Step lengths in ns exceed float32's exact integer range, so divide in
	// float64 and keep a remainder just under one step below 1.
	lag := float32(float64(c.acc) / float64(c.step))
	return min(lag, maxLag)
}

var maxLag = math.Nextafter32(1, 0)

// Step returns the fixed step length.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Dropped returns the number of steps discarded by the cap so far.
func (c *Clock) Dropped() int64 {
	return c.dropped
}
