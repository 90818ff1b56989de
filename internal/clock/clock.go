// Package clock keeps frame time bookkeeping for the simulation.
// All timestamps are milliseconds supplied by an external driver.
package clock

// Clock tracks the current frame time, the delta since the previous frame and
// the time the run started. It never reads the wall clock itself.
type Clock struct {
	started bool
	start   float64
	now     float64
	delta   float64
}

// New returns a clock that has not seen a frame yet.
func New() *Clock {
	return &Clock{}
}

// Advance records a new frame timestamp and returns the delta since the
// previous one. The first call returns 0 and marks the run start.
// A timestamp older than the previous one yields a negative delta; the clock
// does not try to correct it.
func (c *Clock) Advance(now float64) float64 {
	if !c.started {
		c.started = true
		c.start = now
		c.now = now
		c.delta = 0
		return 0
	}
	c.delta = now - c.now
	c.now = now
	return c.delta
}

// Started reports whether Advance was called at least once.
func (c *Clock) Started() bool { return c.started }

// Now is the current frame timestamp.
func (c *Clock) Now() float64 { return c.now }

// Delta is the time elapsed between the last two frames.
func (c *Clock) Delta() float64 { return c.delta }

// StartTime is the timestamp of the first frame.
func (c *Clock) StartTime() float64 { return c.start }

// Elapsed is the time since the first frame.
func (c *Clock) Elapsed() float64 { return c.now - c.start }
