// Package logging configures the process-wide slog default.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default logger. Format is "json" for production or
// "text" for local development; anything else falls back to JSON.
func Setup(level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}

// SetupJSON is a shorthand for Setup(level, "json").
func SetupJSON(level slog.Level) {
	Setup(level, "json")
}
