// Package log builds the logrus logger used for debug output.
//
// User-facing progress goes through the notify package. The logger carries
// diagnostic detail (API calls, patch bodies, retry attempts) and writes to
// stderr so it never mixes with rendered reports on stdout.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warning"

// New returns a logger writing to out at the given level.
func New(out io.Writer, level string) (*logrus.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02T15:04:05Z07:00",
	})
	logger.SetLevel(parsed)

	return logger, nil
}

// ParseLevel parses a logrus level name. An empty name yields DefaultLevel.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.PanicLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return parsed, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)

	return logger
}
