// Package clock implements a square-wave signal source with observer
// notification on every completed period.
package clock

import "github.com/neox5/sqwave/observer"

// Clock is a periodic square-wave signal. It starts high and spends the
// first half of each period high and the rest low; an odd period gives the
// extra unit to the low half.
//
// Time only moves through Advance, there is no background ticking. A Clock
// is not safe for concurrent use; see package driver for a serialized
// real-time runner.
type Clock struct {
	level     bool
	period    uint64
	elapsed   uint64
	observers observer.List
}

// New returns a clock with the given period, zero elapsed time and the
// signal high. A zero period makes the clock inert: Advance does nothing.
func New(period uint64) *Clock {
	return &Clock{level: true, period: period}
}

// Reset reinitializes the clock in place with a new period. Elapsed time
// returns to zero, the signal goes high and all observers are dropped.
func (c *Clock) Reset(period uint64) {
	c.level = true
	c.period = period
	c.elapsed = 0
	c.observers.Clear()
}

// Advance moves the clock forward by delta time units.
//
// When the accumulated time reaches the period, the clock resets its
// elapsed counter and notifies every registered observer exactly once, in
// reverse registration order, before returning. A delta spanning several
// periods still produces a single notification pass. The level is computed
// from the elapsed value before the reset, so the level observed right
// after a notifying call reflects the phase at which the boundary was
// crossed.
func (c *Clock) Advance(delta uint64) {
	if c.period == 0 {
		return
	}
	c.elapsed += delta
	c.level = c.elapsed%c.period < c.period/2
	if c.elapsed >= c.period {
		c.elapsed = 0
		c.observers.Notify()
	}
}

// High reports whether the signal is currently high.
func (c *Clock) High() bool { return c.level }

// Period returns the configured period.
func (c *Clock) Period() uint64 { return c.period }

// Elapsed returns the time accumulated since the last period boundary.
func (c *Clock) Elapsed() uint64 { return c.elapsed }

// Register subscribes o to period-boundary notifications.
func (c *Clock) Register(o *observer.Observer) { c.observers.Register(o) }

// Unregister removes o; absent entries are ignored.
func (c *Clock) Unregister(o *observer.Observer) { c.observers.Unregister(o) }

// Observers returns the number of registered observers.
func (c *Clock) Observers() int { return c.observers.Len() }
