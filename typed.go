package zippedrange

import (
	"iter"
	"slices"
	"strconv"
)

// Pair holds the references produced by one step of a [Range2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the references produced by one step of a [Range3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the references produced by one step of a [Range4].
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Quint holds the references produced by one step of a [Range5].
type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Range2 is a [Range] over two views that keeps their reference types.
type Range2[A, B any] struct {
	r *Range
}

// Zip2 zips a and b. Panics if either view is nil.
func Zip2[A, B any](a View[A], b View[B], opts ...Option) *Range2[A, B] {
	return &Range2[A, B]{r: zip(opts, erase(a, 0), erase(b, 1))}
}

// Range returns the untyped range underneath.
func (z *Range2[A, B]) Range() *Range { return z.r }

// All yields each step's two references.
func (z *Range2[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for t := range z.r.All() {
			if !yield(Field[A](t, 0), Field[B](t, 1)) {
				return
			}
		}
	}
}

// Collect consumes the range and returns every step as a [Pair].
func (z *Range2[A, B]) Collect() []Pair[A, B] {
	var out []Pair[A, B]
	for a, b := range z.All() {
		out = append(out, Pair[A, B]{First: a, Second: b})
	}
	return out
}

// Range3 is a [Range] over three views that keeps their reference types.
type Range3[A, B, C any] struct {
	r *Range
}

// Zip3 zips a, b and c. Panics if any view is nil.
func Zip3[A, B, C any](a View[A], b View[B], c View[C], opts ...Option) *Range3[A, B, C] {
	return &Range3[A, B, C]{r: zip(opts, erase(a, 0), erase(b, 1), erase(c, 2))}
}

// Range returns the untyped range underneath.
func (z *Range3[A, B, C]) Range() *Range { return z.r }

// All yields each step as a [Triple] of references.
func (z *Range3[A, B, C]) All() iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		for t := range z.r.All() {
			if !yield(Triple[A, B, C]{
				First:  Field[A](t, 0),
				Second: Field[B](t, 1),
				Third:  Field[C](t, 2),
			}) {
				return
			}
		}
	}
}

// Collect consumes the range and returns every step as a [Triple].
func (z *Range3[A, B, C]) Collect() []Triple[A, B, C] {
	return slices.Collect(z.All())
}

// Range4 is a [Range] over four views that keeps their reference types.
type Range4[A, B, C, D any] struct {
	r *Range
}

// Zip4 zips four views. Panics if any view is nil.
func Zip4[A, B, C, D any](a View[A], b View[B], c View[C], d View[D], opts ...Option) *Range4[A, B, C, D] {
	return &Range4[A, B, C, D]{r: zip(opts, erase(a, 0), erase(b, 1), erase(c, 2), erase(d, 3))}
}

// Range returns the untyped range underneath.
func (z *Range4[A, B, C, D]) Range() *Range { return z.r }

// All yields each step as a [Quad] of references.
func (z *Range4[A, B, C, D]) All() iter.Seq[Quad[A, B, C, D]] {
	return func(yield func(Quad[A, B, C, D]) bool) {
		for t := range z.r.All() {
			if !yield(Quad[A, B, C, D]{
				First:  Field[A](t, 0),
				Second: Field[B](t, 1),
				Third:  Field[C](t, 2),
				Fourth: Field[D](t, 3),
			}) {
				return
			}
		}
	}
}

// Collect consumes the range and returns every step as a [Quad].
func (z *Range4[A, B, C, D]) Collect() []Quad[A, B, C, D] {
	return slices.Collect(z.All())
}

// Range5 is a [Range] over five views that keeps their reference types.
type Range5[A, B, C, D, E any] struct {
	r *Range
}

// Zip5 zips five views. Panics if any view is nil.
func Zip5[A, B, C, D, E any](a View[A], b View[B], c View[C], d View[D], e View[E], opts ...Option) *Range5[A, B, C, D, E] {
	return &Range5[A, B, C, D, E]{
		r: zip(opts, erase(a, 0), erase(b, 1), erase(c, 2), erase(d, 3), erase(e, 4)),
	}
}

// Range returns the untyped range underneath.
func (z *Range5[A, B, C, D, E]) Range() *Range { return z.r }

// All yields each step as a [Quint] of references.
func (z *Range5[A, B, C, D, E]) All() iter.Seq[Quint[A, B, C, D, E]] {
	return func(yield func(Quint[A, B, C, D, E]) bool) {
		for t := range z.r.All() {
			if !yield(Quint[A, B, C, D, E]{
				First:  Field[A](t, 0),
				Second: Field[B](t, 1),
				Third:  Field[C](t, 2),
				Fourth: Field[D](t, 3),
				Fifth:  Field[E](t, 4),
			}) {
				return
			}
		}
	}
}

// Collect consumes the range and returns every step as a [Quint].
func (z *Range5[A, B, C, D, E]) Collect() []Quint[A, B, C, D, E] {
	return slices.Collect(z.All())
}

func zip(opts []Option, seqs ...Sequence) *Range {
	return newRange(seqs, buildConfig(opts))
}

// erase wraps v for the untyped engine, naming the slot if v is nil.
func erase[R any](v View[R], slot int) Sequence {
	if v == nil {
		panic("zippedrange: nil view at slot " + strconv.Itoa(slot))
	}
	return Erase(v)
}
