package zlog

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey struct{}

// discard is handed out when a context carries no logger, so callers can
// log unconditionally.
var discard = NewTextLogger(io.Discard, slog.LevelError)

// From returns the logger stored in ctx by [ContextWithLogger], or a
// logger that drops every record.
func From(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return discard
}

// ContextWithLogger returns a copy of ctx that carries l. A nil l leaves
// [From] returning the discarding logger.
func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}
