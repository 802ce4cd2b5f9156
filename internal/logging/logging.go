// Package logging provides the diagnostic logger used across the
// application. User-facing output goes to stdout through the cli and
// cmd packages; this logger carries debug detail on stderr.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing structured events to the given writer.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Console returns a human-readable logger on stderr. With verbose set,
// debug events are included.
func Console(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Nop returns a logger that discards everything. Components take it as
// the default so logging stays optional.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
