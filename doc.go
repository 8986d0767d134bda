// Package zippedrange combines two or more sequences of possibly different
// element and container types into a single forward-only sequence of tuples.
//
// Each tuple gathers one element reference from every input at the same
// position, in argument order. Traversal stops as soon as any input is
// exhausted, so the number of tuples is the length of the shortest input.
//
// # Views and Cursors
//
// A sequence takes part in a zip through a [View], which hands out a start
// and an end [Cursor]. A cursor can be dereferenced, advanced and compared
// with another cursor of the same sequence. The type parameter of a view is
// the reference type its cursors produce, so the element type of every slot
// in a zip is known at compile time.
//
// Built-in views cover the common containers:
//
//   - [Slice]: slices and fixed arrays (pass a[:]). Produces *T, so writes
//     through the reference land in the caller's slice.
//   - [Values]: read-only slice view producing copies of T.
//   - [List] and [ListValues]: container/list, mutable through [ListRef]
//     or read-only.
//   - [Map] and [Entries]: maps, visited in ascending key order. [MapRef]
//     writes values back into the map.
//   - [Seq] and [Chan]: pull-based producers (iter.Seq and receive-only
//     channels). Read-only.
//
// Any type implementing [View] can be zipped; use [Erase] to pass it to the
// untyped constructors.
//
// # Zipping
//
// The typed constructors [Zip2], [Zip3], [Zip4] and [Zip5] keep every slot's
// reference type and plug into range-over-func loops:
//
//	for a, b := range zippedrange.Zip2(zippedrange.Slice(xs), zippedrange.Values(ys)).All() {
//	    *a += b
//	}
//
// For any number of inputs, [New] accepts two or more type-erased
// sequences, and [Builder] accumulates them one at a time. Tuples from the
// untyped engine are read with [Field]:
//
//	r := zippedrange.New(zippedrange.Slice(xs), zippedrange.List[string](l), zippedrange.Entries(m))
//	for t := range r.All() {
//	    x := zippedrange.Field[*int](t, 0)
//	    ...
//	}
//
// Zipping fewer than two sequences is rejected: [New] and the typed
// constructors require two at compile time, and [Builder.Build] returns an
// [*ArityError].
//
// # Iteration Protocol
//
// [Range.Begin] and [Range.End] expose the underlying [Iterator] pair.
// [Iterator.Equal] reports true when any slot matches, which is what makes
// a live iterator compare equal to the end iterator once the shortest input
// runs out. Dereferencing or advancing an iterator that is equal to the end
// is undefined, as is structurally modifying an input during traversal.
//
// A range is single-pass: [Range.All] may be ranged over once. Build a new
// range from the same sequences to traverse them again.
//
// # Observability
//
// [WithOnExhausted] registers a hook that learns which slot ended the
// traversal and how many tuples were produced. [WithLogger] attaches a
// [log/slog] logger for debug output.
package zippedrange
