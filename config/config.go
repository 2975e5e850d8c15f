// Package config loads clock run scenarios from YAML.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/neox5/sqwave/lcg"
	"github.com/neox5/sqwave/tick"
)

// Scenario describes one clock run.
type Scenario struct {
	// Period is the clock period in simulated time units. Zero is legal
	// and yields an inert clock.
	Period uint64 `yaml:"period"`
	// IntervalMS is the real-time spacing between advances, in
	// milliseconds.
	IntervalMS uint64 `yaml:"interval_ms"`
	// Delta is the simulated time added per advance. Ignored when jitter
	// is enabled.
	Delta uint64 `yaml:"delta"`
	// Jitter, when enabled, draws each delta from a seeded generator
	// instead of using the fixed Delta.
	Jitter JitterConfig `yaml:"jitter"`
}

// JitterConfig randomizes the per-advance delta as base plus a uniform
// offset in [-amplitude, +amplitude].
type JitterConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Base      uint64 `yaml:"base"`
	Amplitude uint64 `yaml:"amplitude"`
	Seed      uint64 `yaml:"seed"`
}

// Default returns the scenario used when no file is given: a period of 100
// units advanced by 25 every 50ms.
func Default() *Scenario {
	return &Scenario{
		Period:     100,
		IntervalMS: 50,
		Delta:      25,
	}
}

// Load reads and validates a scenario file. Fields missing from the file
// keep their Default values.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "parse scenario %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid scenario %s", path)
	}

	return s, nil
}

// Validate checks the scenario for values the driver cannot run with.
func (s *Scenario) Validate() error {
	if s.IntervalMS == 0 {
		return errors.New("interval_ms must be positive")
	}
	if s.Jitter.Enabled {
		if s.Jitter.Base == 0 {
			return errors.New("jitter base must be positive")
		}
		if s.Jitter.Amplitude > s.Jitter.Base {
			return errors.Errorf("jitter amplitude %d exceeds base %d",
				s.Jitter.Amplitude, s.Jitter.Base)
		}
		return nil
	}
	if s.Delta == 0 {
		return errors.New("delta must be positive")
	}
	return nil
}

// TickInterval returns the real-time advance spacing.
func (s *Scenario) TickInterval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// TickSource builds the delta source the scenario calls for.
func (s *Scenario) TickSource() tick.Source {
	if s.Jitter.Enabled {
		return tick.Jitter(lcg.New(s.Jitter.Seed), s.Jitter.Base, s.Jitter.Amplitude)
	}
	return tick.Fixed(s.Delta)
}
