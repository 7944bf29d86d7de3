// Package logging configures the process-wide slog logger.
//
// Operational records go to stderr so they never interleave with the
// summary and "[!]" notices printed on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a text handler on stderr at the given level.
func Setup(level string) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter installs a text handler writing to w.
func SetupWriter(w io.Writer, level string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
