package zippedrange

import "iter"

// PullView adapts a producer that can only hand out its next value, such
// as an iter.Seq or a channel. It is single-pass: all cursors share one
// producer, which is started by the first dereference or comparison
// rather than when the view or its range is built. When another input
// ends a zip first, the producer may already have handed out one value
// that is never yielded.
type PullView[T any] struct {
	st *pullState[T]
}

// Seq returns a read-only view of s. The sequence is pulled with
// [iter.Pull]; call [Range.Stop] (or let [Range.All] finish) to release it.
//
// Seq panics if s is nil.
func Seq[T any](s iter.Seq[T]) *PullView[T] {
	if s == nil {
		panic("zippedrange: Seq requires non-nil sequence")
	}
	return &PullView[T]{st: &pullState[T]{
		start: func() (func() (T, bool), func()) { return iter.Pull(s) },
	}}
}

// Chan returns a read-only view that receives from ch until it is closed.
// Dereferencing blocks until a value is available.
//
// Chan panics if ch is nil.
func Chan[T any](ch <-chan T) *PullView[T] {
	if ch == nil {
		panic("zippedrange: Chan requires non-nil channel")
	}
	return &PullView[T]{st: &pullState[T]{
		start: func() (func() (T, bool), func()) {
			return func() (T, bool) {
				v, ok := <-ch
				return v, ok
			}, func() {}
		},
	}}
}

// Begin returns a cursor at the producer's next value. All cursors of the
// view share the producer, so advancing one advances them all.
func (v *PullView[T]) Begin() Cursor[T] { return &pullCursor[T]{st: v.st} }

// End returns a sentinel cursor. A live cursor equals it once the producer
// reports no more values.
func (v *PullView[T]) End() Cursor[T] { return &pullCursor[T]{st: v.st, end: true} }

// Stop releases the producer. It is safe to call more than once, and a
// view stopped before its first pull never starts the producer.
func (v *PullView[T]) Stop() { v.st.release() }

func (v *PullView[T]) begin() position { return slot[T]{c: v.Begin()} }

func (v *PullView[T]) end() position { return slot[T]{c: v.End()} }

type pullState[T any] struct {
	start   func() (next func() (T, bool), stop func())
	next    func() (T, bool)
	stop    func()
	cur     T
	ok      bool
	fetched bool
	stopped bool
}

// fill pulls the value under the cursor if it has not been pulled yet.
func (p *pullState[T]) fill() {
	if p.fetched {
		return
	}
	p.fetched = true
	if p.stopped {
		var zero T
		p.cur, p.ok = zero, false
		return
	}
	if p.next == nil {
		p.next, p.stop = p.start()
	}
	p.cur, p.ok = p.next()
}

func (p *pullState[T]) started() bool { return p.next != nil }

func (p *pullState[T]) release() {
	if p.stopped {
		return
	}
	p.stopped = true
	if p.stop != nil {
		p.stop()
	}
}

type pullCursor[T any] struct {
	st  *pullState[T]
	end bool
}

func (c *pullCursor[T]) Deref() T {
	c.st.fill()
	return c.st.cur
}

func (c *pullCursor[T]) Next() {
	c.st.fill()
	c.st.fetched = false
}

func (c *pullCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*pullCursor[T])
	if !ok || c.st != o.st {
		return false
	}
	if c.end == o.end {
		return true
	}
	c.st.fill()
	return !c.st.ok
}
