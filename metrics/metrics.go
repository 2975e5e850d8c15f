// Package metrics records clock activity through hashicorp/go-metrics.
package metrics

import (
	"time"

	gometrics "github.com/hashicorp/go-metrics"

	"github.com/neox5/sqwave/observer"
)

// Init installs a global in-memory sink for the process and returns it for
// inspection.
func Init(serviceName string) (*gometrics.InmemSink, error) {
	sink := gometrics.NewInmemSink(10*time.Second, time.Minute)

	cfg := gometrics.DefaultConfig(serviceName)
	cfg.EnableHostname = false
	if _, err := gometrics.NewGlobal(cfg, sink); err != nil {
		return nil, err
	}

	return sink, nil
}

// CycleCompleted records one completed period for the named clock.
func CycleCompleted(name string) {
	gometrics.IncrCounter([]string{name, "cycles"}, 1)
}

// Entry returns an observer entry that records a completed cycle for the
// named clock on every notification.
func Entry(name string) *observer.Observer {
	return observer.New(func(any) {
		CycleCompleted(name)
	}, nil)
}
