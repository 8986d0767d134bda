package zippedrange

import "strconv"

// Tuple holds one element reference per zipped input, in input order.
// Read components with [Field] or [Tuple.At].
type Tuple struct {
	refs []any
}

// Len returns the number of components.
func (t Tuple) Len() int { return len(t.refs) }

// At returns the i-th component as an untyped value.
func (t Tuple) At(i int) any { return t.refs[i] }

// Field returns the i-th component of t as R. R must be the reference type
// of the i-th input's view; Field panics otherwise.
func Field[R any](t Tuple, i int) R {
	v := t.refs[i]
	if v == nil {
		// nil interface references carry no dynamic type
		var zero R
		return zero
	}
	return v.(R)
}

// Iterator is a position across all inputs of a [Range]. It holds exactly
// one cursor per input, and the k-th cursor always points into the k-th
// input.
type Iterator struct {
	owner *Range
	pos   []position
}

// Arity returns the number of zipped inputs.
func (it *Iterator) Arity() int { return len(it.pos) }

// Deref returns the element references at the current position without
// advancing. Behavior is undefined if it is equal to the range's end.
func (it *Iterator) Deref() Tuple {
	refs := make([]any, len(it.pos))
	for i, p := range it.pos {
		refs[i] = p.deref()
	}
	return Tuple{refs: refs}
}

// Advance moves every cursor forward by one, regardless of how many
// elements each input has left. Advancing an iterator that is equal to the
// range's end is undefined. Advancing the range's begin iterator consumes
// the range, so [Range.All] panics afterwards.
func (it *Iterator) Advance() {
	if it == it.owner.first {
		it.owner.started = true
	}
	for _, p := range it.pos {
		p.next()
	}
}

// Equal reports whether ANY slot of it is at the same position as the
// corresponding slot of other. Comparing a live iterator with the end
// iterator therefore reports true as soon as the shortest input is
// exhausted.
//
// Equal panics with a [*MismatchError] if the iterators differ in arity or
// in the kind of any slot.
func (it *Iterator) Equal(other *Iterator) bool {
	return it.match(other) >= 0
}

// match returns the first slot at which it and other are equal, or -1.
func (it *Iterator) match(other *Iterator) int {
	if it.owner != other.owner {
		it.checkCompatible(other)
	}
	for i, p := range it.pos {
		if p.equal(other.pos[i]) {
			return i
		}
	}
	return -1
}

func (it *Iterator) checkCompatible(other *Iterator) {
	if len(it.pos) != len(other.pos) {
		panic(&MismatchError{
			Slot:  -1,
			Left:  strconv.Itoa(len(it.pos)),
			Right: strconv.Itoa(len(other.pos)),
		})
	}
	for i, p := range it.pos {
		if l, r := p.kind(), other.pos[i].kind(); l != r {
			panic(&MismatchError{Slot: i, Left: l, Right: r})
		}
	}
}
