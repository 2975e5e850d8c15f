package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neox5/sqwave/clock"
	"github.com/neox5/sqwave/driver"
	"github.com/neox5/sqwave/internal/counter"
	"github.com/neox5/sqwave/lcg"
	"github.com/neox5/sqwave/tick"
)

func TestDriverAdvancesClock(t *testing.T) {
	clk := clock.New(10)
	cycles := counter.New()
	clk.Register(cycles.Entry())

	// every real tick completes a period
	d := driver.New(clk, tick.Fixed(10), time.Millisecond)
	d.Start()
	defer d.Stop()

	require.Eventually(t, func() bool {
		var n int
		d.Do(func(*clock.Clock) { n = cycles.Value() })
		return n >= 3
	}, 2*time.Second, time.Millisecond)
}

func TestStopHaltsAdvancing(t *testing.T) {
	clk := clock.New(10)
	cycles := counter.New()
	clk.Register(cycles.Entry())

	d := driver.New(clk, tick.Fixed(10), time.Millisecond)
	d.Start()
	require.Eventually(t, func() bool {
		return cycles.Value() >= 1
	}, 2*time.Second, time.Millisecond)
	d.Stop()

	n := cycles.Value()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, cycles.Value())
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	d := driver.New(clock.New(10), tick.Fixed(1), time.Millisecond)

	assert.NotPanics(t, func() {
		d.Stop() // never started
		d.Start()
		d.Start()
		d.Stop()
		d.Stop()
	})
}

func TestDoSerializesRegistryMutation(t *testing.T) {
	clk := clock.New(10)
	d := driver.New(clk, tick.Fixed(10), time.Millisecond)
	d.Start()
	defer d.Stop()

	cycles := counter.New()
	d.Do(func(c *clock.Clock) {
		c.Register(cycles.Entry())
	})

	require.Eventually(t, func() bool {
		return cycles.Value() >= 1
	}, 2*time.Second, time.Millisecond)

	d.Do(func(c *clock.Clock) {
		assert.Equal(t, 1, c.Observers())
	})
}

func TestDriverWithJitter(t *testing.T) {
	clk := clock.New(100)
	cycles := counter.New()
	clk.Register(cycles.Entry())

	d := driver.New(clk, tick.Jitter(lcg.New(42), 50, 10), time.Millisecond)
	d.Start()
	defer d.Stop()

	require.Eventually(t, func() bool {
		return cycles.Value() >= 1
	}, 2*time.Second, time.Millisecond)
}
