package zippedrange

import (
	"io"
	"log/slog"
)

// ExhaustInfo describes how a traversal ended. It is passed to the hook
// registered via [WithOnExhausted].
type ExhaustInfo struct {
	// Slot is the index of the first input found at its end.
	Slot int

	// Steps is the number of tuples produced before the end was reached.
	Steps int
}

type config struct {
	onExhausted func(ExhaustInfo)
	logger      *slog.Logger
}

// Option configures a [Range].
type Option func(*config)

var nopLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

func defaultConfig() config {
	return config{
		logger: nopLogger,
	}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOnExhausted registers a hook invoked once when [Range.All] stops
// because an input ran out. It is not called when the loop body breaks
// early.
func WithOnExhausted(fn func(ExhaustInfo)) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}

// WithLogger sets the logger used for debug output. A nil logger restores
// the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = nopLogger
		}
		c.logger = l
	}
}
