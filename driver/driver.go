// Package driver runs a clock against real time.
//
// The clock engine itself is passive: simulated time only moves when
// Advance is called. A Driver does that calling, translating wall-clock
// ticks into Advance deltas drawn from a tick source, and serializes every
// touch of the clock behind one mutex so observers can be registered and
// removed while the driver runs.
package driver

import (
	"sync"
	"time"

	"github.com/neox5/sqwave/clock"
	"github.com/neox5/sqwave/tick"
)

// Driver advances a clock at a fixed real-time interval.
type Driver struct {
	clk      *clock.Clock
	deltas   tick.Source
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New creates a driver that advances clk by deltas.Next() every interval.
func New(clk *clock.Clock, deltas tick.Source, interval time.Duration) *Driver {
	return &Driver{
		clk:      clk,
		deltas:   deltas,
		interval: interval,
	}
}

// Start begins advancing the clock in a background goroutine. Starting a
// running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stop != nil {
		return
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(d.stop, d.done)
}

func (d *Driver) run(stop chan struct{}, done chan struct{}) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-ticker.C:
			d.mu.Lock()
			d.clk.Advance(d.deltas.Next())
			d.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// Stop halts the driver and waits for the run loop to exit. Stopping a
// stopped driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Do runs f with the clock while advancing is held off, so registry changes
// and reads never race a concurrent Advance.
func (d *Driver) Do(f func(c *clock.Clock)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f(d.clk)
}
