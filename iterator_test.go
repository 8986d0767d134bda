package zippedrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorManualProtocol(t *testing.T) {
	xs := []int{0, 1, 2, 3}
	ys := []string{"a", "b", "c"}

	r := New(Slice(xs), Values(ys))
	it, end := r.Begin(), r.End()
	require.Equal(t, 2, it.Arity())

	var got []string
	for !it.Equal(end) {
		tup := it.Deref()
		*Field[*int](tup, 0) *= 10
		got = append(got, Field[string](tup, 1))
		it.Advance()
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []int{0, 10, 20, 3}, xs, "element past the shortest input is untouched")
}

func TestIteratorEqualIsDisjunction(t *testing.T) {
	r := New(Values([]int{1, 2, 3}), Values([]int{1}), Values([]int{1, 2, 3}))
	it, end := r.Begin(), r.End()

	assert.False(t, it.Equal(end))
	assert.True(t, it.Equal(it))

	it.Advance()
	// only slot 1 is at its end; that alone ends the traversal
	assert.True(t, it.Equal(end))
	assert.True(t, end.Equal(it))
	assert.Equal(t, 1, it.match(end))
}

func TestIteratorDerefDoesNotAdvance(t *testing.T) {
	r := New(Values([]int{5, 6}), Values([]int{7, 8}))
	it := r.Begin()

	first := it.Deref()
	second := it.Deref()
	assert.Equal(t, first.At(0), second.At(0))
	assert.Equal(t, 7, second.At(1))
}

func TestIteratorMismatchPanics(t *testing.T) {
	a := New(Values([]int{1}), Values([]int{2}))
	b := New(Values([]int{1}), Values([]int{2}), Values([]int{3}))
	c := New(Values([]int{1}), Values([]string{"x"}))

	t.Run("arity", func(t *testing.T) {
		defer func() {
			rec := recover()
			me, ok := rec.(*MismatchError)
			require.True(t, ok, "panic value %v", rec)
			assert.Equal(t, -1, me.Slot)
			assert.Equal(t, "zippedrange: cannot compare iterators of arity 2 and 3", me.Error())
		}()
		a.Begin().Equal(b.Begin())
	})

	t.Run("kind", func(t *testing.T) {
		defer func() {
			rec := recover()
			me, ok := rec.(*MismatchError)
			require.True(t, ok, "panic value %v", rec)
			assert.Equal(t, 1, me.Slot)
			assert.Equal(t, "int", me.Left)
			assert.Equal(t, "string", me.Right)
		}()
		a.Begin().Equal(c.Begin())
	})

	t.Run("compatible ranges compare", func(t *testing.T) {
		other := New(Values([]int{9, 9}), Values([]int{9}))
		assert.True(t, a.Begin().Equal(other.Begin()))
	})
}

func TestFieldNilInterface(t *testing.T) {
	errs := []error{nil, assert.AnError}
	r := New(Values(errs), Values([]int{1, 2}))

	var got []error
	for tup := range r.All() {
		got = append(got, Field[error](tup, 0))
	}
	assert.Equal(t, []error{nil, assert.AnError}, got)
}

func TestFieldWrongTypePanics(t *testing.T) {
	r := New(Values([]int{1}), Values([]int{2}))
	tup := r.Begin().Deref()
	assert.Panics(t, func() { Field[string](tup, 0) })
}
