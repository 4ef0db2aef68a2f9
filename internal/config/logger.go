package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at the named level.
// Unknown levels fall back to warn.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err == nil {
		lvl = parsed
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
