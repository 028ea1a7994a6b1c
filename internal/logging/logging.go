// Package logging builds the slog logger used by the CLI.
package logging

import (
	"io"
	"log/slog"
)

// Level picks the log level from the verbosity flags. Quiet wins over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
