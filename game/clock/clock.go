// Package clock turns variable-rate frame timestamps into fixed-rate
// simulation ticks.
package clock

import "time"

// DefaultInterval is the logical tick length.
const DefaultInterval = 150 * time.Millisecond

// Clock accumulates elapsed frame time and releases it in whole ticks.
// Timestamps are offsets from any fixed origin chosen by the frame source.
type Clock struct {
	interval time.Duration

	last    time.Duration
	started bool
	acc     time.Duration
}

func New(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Advance records a frame delivered at ts and returns how many ticks are
// now due. The first frame after creation or Reset only sets the baseline.
func (c *Clock) Advance(ts time.Duration) int {
	if !c.started {
		c.last = ts
		c.started = true
		return 0
	}

	elapsed := ts - c.last
	c.last = ts
	if elapsed < 0 {
		elapsed = 0
	}
	if c.interval <= 0 {
		return 0
	}

	c.acc += elapsed
	ticks := 0
	for c.acc >= c.interval {
		c.acc -= c.interval
		ticks++
	}
	return ticks
}

// Reset forgets the baseline and drops unconsumed time, so the frame after
// a pause does not replay the gap as a burst of ticks.
func (c *Clock) Reset() {
	c.started = false
	c.last = 0
	c.acc = 0
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Accumulated returns the unconsumed time, always below Interval.
func (c *Clock) Accumulated() time.Duration {
	return c.acc
}

// Started reports whether a baseline frame has been recorded.
func (c *Clock) Started() bool {
	return c.started
}
