package zippedrange

import (
	"fmt"
	"iter"
	"log/slog"
)

// Range is a zipped view over two or more sequences: a begin and an end
// [Iterator] computed once at construction.
//
// A Range borrows its inputs. It is single-pass and not safe for
// concurrent use.
type Range struct {
	seqs    []Sequence
	first   *Iterator
	last    *Iterator
	cfg     config
	started bool
}

// New zips a, b and any further sequences, in argument order.
//
// New panics if any sequence is nil.
func New(a, b Sequence, more ...Sequence) *Range {
	seqs := make([]Sequence, 0, 2+len(more))
	seqs = append(seqs, a, b)
	seqs = append(seqs, more...)
	return newRange(seqs, defaultConfig())
}

func newRange(seqs []Sequence, cfg config) *Range {
	for i, s := range seqs {
		if s == nil {
			panic(fmt.Sprintf("zippedrange: nil sequence at slot %d", i))
		}
	}

	r := &Range{seqs: seqs, cfg: cfg}
	r.first = &Iterator{owner: r, pos: make([]position, len(seqs))}
	r.last = &Iterator{owner: r, pos: make([]position, len(seqs))}
	for i, s := range seqs {
		r.first.pos[i] = s.begin()
		r.last.pos[i] = s.end()
	}

	cfg.logger.Debug("zipped range constructed", slog.Int("arity", len(seqs)))
	return r
}

// With applies opts to r and returns it.
func (r *Range) With(opts ...Option) *Range {
	for _, opt := range opts {
		opt(&r.cfg)
	}
	return r
}

// Arity returns the number of zipped inputs.
func (r *Range) Arity() int { return len(r.seqs) }

// Begin returns the iterator positioned at every input's start. The same
// iterator is returned on each call; advancing it consumes the range.
func (r *Range) Begin() *Iterator { return r.first }

// End returns the iterator positioned at every input's end.
func (r *Range) End() *Iterator { return r.last }

// All returns the zipped tuples as a single-use sequence. It yields
// exactly min(len(input)) tuples, then releases pull-based inputs.
//
// All panics if the range has already been traversed, either by an
// earlier call to All or by advancing [Range.Begin] by hand.
func (r *Range) All() iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		if r.started {
			panic("zippedrange: range already traversed; build a new one")
		}
		r.started = true
		defer r.Stop()

		it, end := r.first, r.last
		var steps int
		for {
			if s := it.match(end); s >= 0 {
				r.exhausted(ExhaustInfo{Slot: s, Steps: steps})
				return
			}
			if !yield(it.Deref()) {
				return
			}
			steps++
			it.Advance()
		}
	}
}

func (r *Range) exhausted(info ExhaustInfo) {
	r.cfg.logger.Debug("zipped range exhausted",
		slog.Int("slot", info.Slot),
		slog.Int("steps", info.Steps),
	)
	if r.cfg.onExhausted != nil {
		r.cfg.onExhausted(info)
	}
}

// Stop releases inputs that hold resources, such as [Seq] views. It is
// safe to call more than once and is called by [Range.All] on return.
func (r *Range) Stop() {
	for _, s := range r.seqs {
		if st, ok := s.(stopper); ok {
			st.Stop()
		}
	}
}

// Count consumes the range and returns the number of tuples produced.
func (r *Range) Count() int {
	var n int
	for range r.All() {
		n++
	}
	return n
}

// ForEach calls fn for every tuple, stopping at the first error.
func (r *Range) ForEach(fn func(Tuple) error) error {
	for t := range r.All() {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}
