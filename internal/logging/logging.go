// Package logging builds the structured logger. Records go to stderr so the
// session transcript on stdout is never interleaved with diagnostics.
package logging

import (
	"io"
	"log/slog"

	"github.com/papapumpkin/orrery/internal/config"
)

// New returns a logger writing to w, configured from cfg. Verbose forces
// debug level regardless of LogLevel.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a config level name to a slog level. Unknown names map to warn.
func ParseLevel(s string) slog.Level {
	switch s {
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
