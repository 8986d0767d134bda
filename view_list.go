package zippedrange

import "container/list"

// ListRef is a handle to one element of a container/list. Get asserts the
// stored value to T and panics if it holds a different type.
type ListRef[T any] struct {
	e *list.Element
}

// Get returns the element's current value.
func (r ListRef[T]) Get() T { return r.e.Value.(T) }

// Set replaces the element's value in place.
func (r ListRef[T]) Set(v T) { r.e.Value = v }

// ListView walks a container/list from front to back.
type ListView[R any] struct {
	l     *list.List
	deref func(e *list.Element) R
}

// List returns a mutable view of l whose elements hold values of type T.
// It panics if l is nil.
func List[T any](l *list.List) *ListView[ListRef[T]] {
	mustList(l)
	return &ListView[ListRef[T]]{
		l:     l,
		deref: func(e *list.Element) ListRef[T] { return ListRef[T]{e: e} },
	}
}

// ListValues returns a read-only view of l whose elements hold values of
// type T.
func ListValues[T any](l *list.List) *ListView[T] {
	mustList(l)
	return &ListView[T]{
		l:     l,
		deref: func(e *list.Element) T { return e.Value.(T) },
	}
}

func mustList(l *list.List) {
	if l == nil {
		panic("zippedrange: List requires non-nil list")
	}
}

// Begin returns a cursor at the front of the list.
func (v *ListView[R]) Begin() Cursor[R] {
	return &listCursor[R]{e: v.l.Front(), deref: v.deref}
}

// End returns the one-past-last cursor, which holds no element.
func (v *ListView[R]) End() Cursor[R] {
	return &listCursor[R]{deref: v.deref}
}

func (v *ListView[R]) begin() position { return slot[R]{c: v.Begin()} }

func (v *ListView[R]) end() position { return slot[R]{c: v.End()} }

type listCursor[R any] struct {
	e     *list.Element
	deref func(e *list.Element) R
}

func (c *listCursor[R]) Deref() R { return c.deref(c.e) }

func (c *listCursor[R]) Next() { c.e = c.e.Next() }

func (c *listCursor[R]) Equal(other Cursor[R]) bool {
	o, ok := other.(*listCursor[R])
	return ok && c.e == o.e
}
