package zippedrange

import "reflect"

// Cursor is a position inside one sequence.
//
// R is the reference type produced by dereferencing, for example *T for a
// mutable slice or T for a read-only view. Next must move the receiver
// itself, so implementations use pointer receivers.
type Cursor[R any] interface {
	// Deref returns the element reference at the current position.
	// Behavior is undefined if the cursor equals the sequence's end.
	Deref() R

	// Next moves the cursor forward by one element.
	Next()

	// Equal reports whether both cursors denote the same position of the
	// same sequence.
	Equal(other Cursor[R]) bool
}

// View is a borrowed, forward-iterable sequence. It does not own the data
// it walks; the underlying container must outlive every cursor handed out.
type View[R any] interface {
	Begin() Cursor[R]
	End() Cursor[R]
}

// Sequence is a type-erased view accepted by [New] and [Builder].
// All built-in views implement it; wrap other views with [Erase].
type Sequence interface {
	begin() position
	end() position
}

// stopper is implemented by views that hold resources past traversal.
type stopper interface {
	Stop()
}

// position is one slot of an [Iterator], a cursor with its reference type
// erased.
type position interface {
	deref() any
	next()
	equal(other position) bool
	kind() string
}

type slot[R any] struct {
	c Cursor[R]
}

func (s slot[R]) deref() any { return s.c.Deref() }

func (s slot[R]) next() { s.c.Next() }

func (s slot[R]) equal(other position) bool {
	// kinds were checked by Iterator.match
	return s.c.Equal(other.(slot[R]).c)
}

func (s slot[R]) kind() string { return reflect.TypeFor[R]().String() }

// Erase converts a typed view into a [Sequence]. Built-in views are
// returned unchanged.
//
// Erase panics if v is nil.
func Erase[R any](v View[R]) Sequence {
	if v == nil {
		panic("zippedrange: Erase requires non-nil view")
	}
	if s, ok := v.(Sequence); ok {
		return s
	}
	return erased[R]{v: v}
}

type erased[R any] struct {
	v View[R]
}

func (e erased[R]) begin() position { return slot[R]{c: e.v.Begin()} }

func (e erased[R]) end() position { return slot[R]{c: e.v.End()} }

func (e erased[R]) Stop() {
	if s, ok := e.v.(stopper); ok {
		s.Stop()
	}
}
