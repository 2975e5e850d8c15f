// Package lcg provides a small linear congruential generator with an
// explicit seed, meant for reproducible simulation input such as jittered
// tick sizes.
//
// Unlike a process-wide seeded generator, every Source carries its own
// state: two Sources given the same seed produce the same sequence, and
// reseeding one never disturbs another.
package lcg

// Max is the largest value Int can return.
const Max = 0x7fffffff

const multiplier = 0x3243f6a8885a308d

// Source is a deterministic generator. Not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Seed resets the generator state. The sequence after Seed(s) is identical
// to that of a fresh New(s).
func (s *Source) Seed(seed uint64) {
	s.state = seed
}

// Int returns the next value in [0, Max].
func (s *Source) Int() int {
	s.state = s.state*multiplier + 1
	return int(s.state >> 33)
}

// IntN returns the next value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("lcg: IntN with non-positive n")
	}
	return s.Int() % n
}

// Uint64 returns the next raw state word. It makes *Source satisfy
// math/rand/v2's Source, so it can back a rand.Rand where richer
// distributions are needed.
func (s *Source) Uint64() uint64 {
	s.state = s.state*multiplier + 1
	return s.state
}
