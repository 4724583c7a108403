// Package config holds the timer's fixed settings and the few knobs that can
// be overridden from flags or the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Timer settings.
const (
	DefaultDuration  = 4 * time.Hour
	TickInterval     = time.Second
	QuoteMinInterval = 900 * time.Second
	QuoteMaxInterval = 1800 * time.Second
)

// Terminal fallback used when the size cannot be queried.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// TimeLayout is how start, end and completion instants are shown.
const TimeLayout = "2006-01-02 15:04:05"

// Environment variables.
const (
	EnvDuration = "WORK_DURATION"
	EnvLogFile  = "WORK_LOG"
	EnvLogLevel = "WORK_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// ErrInvalidDuration is returned for unparsable or non-positive durations.
var ErrInvalidDuration = errors.New("invalid duration")

// ParseDuration accepts a Go duration ("4h", "25m30s") or a bare integer
// number of seconds ("14400").
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}
	var d time.Duration
	if secs, err := strconv.ParseInt(input, 10, 64); err == nil {
		if secs > math.MaxInt64/int64(time.Second) {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, input)
		}
		d = time.Duration(secs) * time.Second
	} else {
		parsed, perr := time.ParseDuration(input)
		if perr != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
		}
		d = parsed
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be > 0", ErrInvalidDuration, input)
	}
	return d, nil
}

// Duration returns the run length from WORK_DURATION, or DefaultDuration
// when unset.
func Duration() (time.Duration, error) {
	v := os.Getenv(EnvDuration)
	if v == "" {
		return DefaultDuration, nil
	}
	d, err := ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvDuration, err)
	}
	return d, nil
}

// NoColor reports whether styling is disabled via NO_COLOR.
func NoColor() bool {
	return os.Getenv(EnvNoColor) != ""
}
