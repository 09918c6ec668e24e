package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// DefaultTimezone is the zone all dates are resolved in unless overridden.
const DefaultTimezone = "Asia/Kolkata"

// resolveLocation loads the timezone from the flag value, the
// TAILORTALK_TIMEZONE environment variable, or the default, in that order.
func resolveLocation(flagValue string) (*time.Location, error) {
	name := flagValue
	if name == "" {
		name = os.Getenv("TAILORTALK_TIMEZONE")
	}
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// newLogger builds the process-wide slog logger and installs it as the
// default.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
