package zlog

import (
	"io"
	"log/slog"
)

// Logger is the structured logger threaded through zipcat.
type Logger = *slog.Logger

// NewLogger returns a Logger writing to h.
func NewLogger(h slog.Handler) Logger {
	return slog.New(h)
}

// NewTextLogger writes key=value records to w at or above level.
func NewTextLogger(w io.Writer, level slog.Leveler) Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
