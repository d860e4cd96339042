package snake

import "time"

// Ticker gates movement to a fixed cadence. Elapsed frame time accumulates
// until it reaches the interval; a firing resets the accumulator, so any
// excess beyond one interval is dropped and a long frame moves the snake once.
type Ticker struct {
	interval time.Duration
	acc      time.Duration
}

// NewTicker creates a ticker that fires every interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Advance adds elapsed to the accumulator and reports whether a tick fired.
func (t *Ticker) Advance(elapsed time.Duration) bool {
	if elapsed > 0 {
		t.acc += elapsed
	}
	if t.acc < t.interval {
		return false
	}
	t.acc = 0
	return true
}

// SetInterval changes the cadence without touching the accumulator.
func (t *Ticker) SetInterval(interval time.Duration) {
	t.interval = interval
}

// Interval returns the current cadence.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Pending returns the accumulated time since the last tick.
func (t *Ticker) Pending() time.Duration {
	return t.acc
}

// Reset clears the accumulator.
func (t *Ticker) Reset() {
	t.acc = 0
}
