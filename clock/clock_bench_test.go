package clock_test

import (
	"testing"

	"github.com/neox5/sqwave/clock"
	"github.com/neox5/sqwave/observer"
)

// ============================================================================
// BENCHMARK TESTS
// Measure performance characteristics
// ============================================================================

// BenchmarkAdvance measures the hot path without boundary crossings.
func BenchmarkAdvance(b *testing.B) {
	c := clock.New(1 << 32)

	b.ResetTimer()

	for b.Loop() {
		c.Advance(1)
	}
}

// BenchmarkAdvanceWithNotify measures a boundary crossing on every call with
// a handful of observers.
func BenchmarkAdvanceWithNotify(b *testing.B) {
	c := clock.New(1)
	var sink int
	for range 8 {
		c.Register(observer.New(func(any) { sink++ }, nil))
	}

	b.ResetTimer()

	for b.Loop() {
		c.Advance(1)
	}
}
