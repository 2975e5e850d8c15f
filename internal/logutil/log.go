package logutil

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global logrus logger. With a filename, output goes to
// a size-rotated file; alsoStderr additionally mirrors it to stderr.
func Init(level, filename string, alsoStderr bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if filename == "" {
		log.SetOutput(os.Stdout)
		return nil
	}

	output := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    128, // MB
		MaxAge:     7,
		MaxBackups: 10,
		LocalTime:  true,
	}
	if alsoStderr {
		log.SetOutput(io.MultiWriter(os.Stderr, output))
	} else {
		log.SetOutput(output)
	}

	return nil
}
