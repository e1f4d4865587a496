// Package logging builds the structured logger used by the warmup command.
//
// Usage:
//
//	log := logging.New("warmup", "debug", "json", os.Stderr)
//	log.WithField("func", "sum").Debug("evaluated")
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/comalice/warmup/internal/config"
)

// New creates a logrus logger for a named service writing to out. format is
// config.LogJSON or config.LogText; an empty or unknown level falls back to
// info. The service field is embedded in every log line.
func New(service, level, format string, out io.Writer) *logrus.Entry {
	log := logrus.New()
	if format == config.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	}
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil || level == "" {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log.WithField("service", service)
}
