package zippedrange

import (
	"cmp"
	"maps"
	"slices"
)

// Entry is a read-only copy of one key-value pair of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// MapRef is a handle to one entry of a map. The key is fixed; the value is
// read and written through the map on every call.
type MapRef[K comparable, V any] struct {
	m   map[K]V
	key K
}

// Key returns the entry's key.
func (r MapRef[K, V]) Key() K { return r.key }

// Get returns the value currently stored under the key.
func (r MapRef[K, V]) Get() V { return r.m[r.key] }

// Set stores v under the entry's key in the underlying map.
func (r MapRef[K, V]) Set(v V) { r.m[r.key] = v }

// Map returns a mutable view of m. Keys are captured when the view is
// created and visited in ascending order. Adding or deleting keys while a
// zip over the view is in progress is undefined.
func Map[K cmp.Ordered, V any](m map[K]V) *IndexView[MapRef[K, V]] {
	return mapRefs(m, slices.Sorted(maps.Keys(m)))
}

// MapFunc is like [Map] for any comparable key type. Keys are visited in
// the order defined by compare, or in Go's unspecified map order if
// compare is nil.
func MapFunc[K comparable, V any](m map[K]V, compare func(a, b K) int) *IndexView[MapRef[K, V]] {
	return mapRefs(m, sortedKeys(m, compare))
}

// Entries returns a read-only view of m in ascending key order.
func Entries[K cmp.Ordered, V any](m map[K]V) *IndexView[Entry[K, V]] {
	return mapEntries(m, slices.Sorted(maps.Keys(m)))
}

// EntriesFunc is like [Entries] for any comparable key type, ordered as
// in [MapFunc].
func EntriesFunc[K comparable, V any](m map[K]V, compare func(a, b K) int) *IndexView[Entry[K, V]] {
	return mapEntries(m, sortedKeys(m, compare))
}

func sortedKeys[K comparable, V any](m map[K]V, compare func(a, b K) int) []K {
	if compare == nil {
		return slices.Collect(maps.Keys(m))
	}
	return slices.SortedFunc(maps.Keys(m), compare)
}

func mapRefs[K comparable, V any](m map[K]V, keys []K) *IndexView[MapRef[K, V]] {
	return &IndexView[MapRef[K, V]]{
		n:  len(keys),
		at: func(i int) MapRef[K, V] { return MapRef[K, V]{m: m, key: keys[i]} },
	}
}

func mapEntries[K comparable, V any](m map[K]V, keys []K) *IndexView[Entry[K, V]] {
	return &IndexView[Entry[K, V]]{
		n: len(keys),
		at: func(i int) Entry[K, V] {
			k := keys[i]
			return Entry[K, V]{Key: k, Value: m[k]}
		},
	}
}
