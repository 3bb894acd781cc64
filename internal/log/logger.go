// Package log configures structured diagnostics for the expenses CLI.
package log

import (
	"io"
	"log/slog"
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
}

// DefaultConfig logs warnings and above.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Component: "expenses",
	}
}

// New returns a text logger writing to w, tagged with the component name.
// Diagnostics go to w only; user-facing messages are never logged.
func New(w io.Writer, cfg Config) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level})
	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger
}

// Setup builds a logger from cfg and installs it as the slog default.
func Setup(w io.Writer, cfg Config) *slog.Logger {
	logger := New(w, cfg)
	slog.SetDefault(logger)
	return logger
}
