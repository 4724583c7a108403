// Package logging builds the structured logger. The terminal belongs to the
// timer, so logs go nowhere unless WORK_LOG names a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/max-pantom/work/internal/config"
)

// New returns a logger writing to w at level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "work",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// FromEnv reads WORK_LOG and WORK_LOG_LEVEL. The returned close func is never
// nil.
func FromEnv() (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	level := log.InfoLevel
	if v := os.Getenv(config.EnvLogLevel); v != "" {
		parsed, err := log.ParseLevel(v)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", config.EnvLogLevel, err)
		}
		level = parsed
	}

	path := os.Getenv(config.EnvLogFile)
	if path == "" {
		return New(io.Discard, level), noop, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
