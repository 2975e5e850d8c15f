package main

import (
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/neox5/sqwave/clock"
	"github.com/neox5/sqwave/config"
	"github.com/neox5/sqwave/driver"
	"github.com/neox5/sqwave/internal/counter"
	"github.com/neox5/sqwave/internal/logutil"
	"github.com/neox5/sqwave/metrics"
	"github.com/neox5/sqwave/observer"
)

var (
	configPath string
	duration   time.Duration
	logLevel   string
	logFile    string
)

func init() {
	flag.StringVar(&configPath, "config", "", "scenario yaml file, built-in default if empty")
	flag.DurationVar(&duration, "duration", 5*time.Second, "how long to run")
	flag.StringVar(&logLevel, "log_level", "info", "log level")
	flag.StringVar(&logFile, "log_file", "", "log filename, stdout if empty")
	flag.Parse()
}

func main() {
	if err := logutil.Init(logLevel, logFile, false); err != nil {
		log.Fatalf("init log: %+v", err)
	}

	scenario := config.Default()
	if configPath != "" {
		var err error
		if scenario, err = config.Load(configPath); err != nil {
			log.Fatalf("load scenario: %+v", err)
		}
	}

	if _, err := metrics.Init("sqwave"); err != nil {
		log.Fatalf("init metrics: %+v", err)
	}

	clk := clock.New(scenario.Period)

	// Notification runs most-recently-registered first, so the counter is
	// registered last and the log line sees the fresh tally.
	cycles := counter.New()
	clk.Register(observer.New(func(any) {
		log.WithFields(log.Fields{
			"high":   clk.High(),
			"cycles": cycles.Value(),
		}).Debug("period complete")
	}, nil))
	clk.Register(metrics.Entry("clock"))
	clk.Register(cycles.Entry())

	d := driver.New(clk, scenario.TickSource(), scenario.TickInterval())

	log.Infof("sqwave start: period=%d interval=%s duration=%s",
		scenario.Period, scenario.TickInterval(), duration)

	d.Start()
	time.Sleep(duration)
	d.Stop()

	log.Infof("sqwave done: cycles=%d", cycles.Value())
}
