package core

import "time"

// TickFunc receives the elapsed milliseconds since the previous delivered tick.
type TickFunc func(deltaMs float64)

// Clock measures per-frame deltas for the host loop. Paused spans are not
// counted: Resume re-bases the reference time so the first tick afterwards
// reports a single frame rather than the whole pause.
type Clock struct {
	now      func() time.Time
	last     time.Time
	elapsed  time.Duration
	maxDelta time.Duration
	started  bool
	paused   bool
}

// NewClock constructs a Clock reading time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// SetMaxDelta caps the delta reported by a single tick. Zero disables the cap.
func (c *Clock) SetMaxDelta(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.maxDelta = d
}

// Tick returns the time since the previous tick. The first tick reports zero.
// ok is false while the clock is paused.
func (c *Clock) Tick() (delta time.Duration, ok bool) {
	if c.paused {
		return 0, false
	}
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0, true
	}
	delta = t.Sub(c.last)
	c.last = t
	if delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.elapsed += delta
	return delta, true
}

// Drive ticks the clock and hands the delta to fn unless the clock is paused.
func (c *Clock) Drive(fn TickFunc) bool {
	delta, ok := c.Tick()
	if !ok {
		return false
	}
	if fn != nil {
		fn(float64(delta) / float64(time.Millisecond))
	}
	return true
}

// Pause stops tick delivery.
func (c *Clock) Pause() { c.paused = true }

// Resume restarts tick delivery from the current time.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	if c.started {
		c.last = c.now()
	}
}

// Toggle flips between paused and running and reports the new paused state.
func (c *Clock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// Paused reports whether tick delivery is suspended.
func (c *Clock) Paused() bool { return c.paused }

// Elapsed returns the accumulated virtual time, excluding paused spans.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }
