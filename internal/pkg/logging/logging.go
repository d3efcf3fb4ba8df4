package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger from config. Supports
// "trace" | "debug" | "info" | "warn" | "error" levels and
// "json" | "console" output formats.
func New(level, format string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if strings.ToLower(format) == "console" {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		base = zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	} else {
		base = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
	}
	return &base
}
