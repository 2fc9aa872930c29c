package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable logger writing to w. An unknown or
// empty level falls back to info.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
