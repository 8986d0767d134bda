package zippedrange

// IndexView walks a sequence addressed by position 0..n-1. It backs the
// slice, array and map views.
type IndexView[R any] struct {
	n  int
	at func(i int) R
}

// Slice returns a mutable view of s. Dereferencing yields a pointer into
// s, so assignments through it change the caller's slice. Fixed-size
// arrays are zipped by slicing them: Slice(arr[:]).
func Slice[T any](s []T) *IndexView[*T] {
	return &IndexView[*T]{
		n:  len(s),
		at: func(i int) *T { return &s[i] },
	}
}

// Values returns a read-only view of s. Dereferencing yields a copy of the
// element.
func Values[T any](s []T) *IndexView[T] {
	return &IndexView[T]{
		n:  len(s),
		at: func(i int) T { return s[i] },
	}
}

// Len returns the number of elements the view covers.
func (v *IndexView[R]) Len() int { return v.n }

// Begin returns a cursor at position 0.
func (v *IndexView[R]) Begin() Cursor[R] { return &indexCursor[R]{at: v.at} }

// End returns the cursor one past the last position.
func (v *IndexView[R]) End() Cursor[R] { return &indexCursor[R]{i: v.n, at: v.at} }

func (v *IndexView[R]) begin() position { return slot[R]{c: v.Begin()} }

func (v *IndexView[R]) end() position { return slot[R]{c: v.End()} }

type indexCursor[R any] struct {
	i  int
	at func(i int) R
}

func (c *indexCursor[R]) Deref() R { return c.at(c.i) }

func (c *indexCursor[R]) Next() { c.i++ }

func (c *indexCursor[R]) Equal(other Cursor[R]) bool {
	o, ok := other.(*indexCursor[R])
	return ok && c.i == o.i
}
