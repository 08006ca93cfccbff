// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger used for operational messages.
// Log output goes to stderr so that stdout carries only search results.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // zerolog level name; unknown or empty means warn
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human-readable output instead of JSON lines
}

// New returns a logger writing to cfg.Output at cfg.Level.
func New(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
