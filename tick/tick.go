// Package tick supplies the time deltas fed to a clock's Advance.
package tick

import "github.com/neox5/sqwave/lcg"

// Source produces the next delta to advance a clock by.
type Source interface {
	Next() uint64
}

// Fixed returns a Source that always yields delta.
func Fixed(delta uint64) Source {
	return fixed(delta)
}

type fixed uint64

func (f fixed) Next() uint64 { return uint64(f) }

// Jitter returns a Source yielding base plus a uniform offset in
// [-amplitude, +amplitude] drawn from src, never less than 1. The sequence
// is reproducible for a given seed. Panics if amplitude exceeds base.
func Jitter(src *lcg.Source, base, amplitude uint64) Source {
	if amplitude > base {
		panic("tick: jitter amplitude exceeds base")
	}
	return &jitter{src: src, base: base, amp: amplitude}
}

type jitter struct {
	src  *lcg.Source
	base uint64
	amp  uint64
}

func (j *jitter) Next() uint64 {
	if j.amp == 0 {
		return max(j.base, 1)
	}
	span := 2*j.amp + 1
	d := j.base - j.amp + uint64(j.src.IntN(int(span)))
	if d == 0 {
		d = 1
	}
	return d
}
