package snake

import "time"

// DefaultTickPeriod is how often the snake advances one cell.
const DefaultTickPeriod = 500 * time.Millisecond

// Clock is a repeating fixed-period timer fed with real frame deltas.
// The remainder past each period is carried into the next one, so a
// long run never drifts by more than one period.
type Clock struct {
	period   time.Duration
	elapsed  time.Duration
	finished int
	total    uint64
}

// NewClock creates a repeating clock. Non-positive periods fall back to
// DefaultTickPeriod.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Clock{period: period}
}

// Tick advances the clock by delta. Negative deltas are ignored.
func (c *Clock) Tick(delta time.Duration) {
	c.finished = 0
	if delta <= 0 {
		return
	}

	c.elapsed += delta
	if c.elapsed < c.period {
		return
	}

	c.finished = int(c.elapsed / c.period)
	c.elapsed %= c.period
	c.total += uint64(c.finished)
}

// JustFinished reports whether the last Tick completed at least one period.
func (c *Clock) JustFinished() bool {
	return c.finished > 0
}

// TimesFinished returns how many periods the last Tick completed.
func (c *Clock) TimesFinished() int {
	return c.finished
}

// Total returns the number of periods completed since creation or Reset.
func (c *Clock) Total() uint64 {
	return c.total
}

// Elapsed returns the time accumulated toward the next period.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Period returns the clock period.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Reset clears all accumulated time.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.finished = 0
	c.total = 0
}
