package bidi

import (
	"fmt"
	"iter"
	"reflect"
)

// Pair is a single mapping entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Collect materializes seq in iteration order.
func Collect[K, V any](seq iter.Seq2[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	for k, v := range seq {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}

	return out
}

// MustInverse returns m.Inverse(). It panics with an *UnimplementedError if
// the implementation left its inverse unset, either as a nil interface or as
// a nil pointer, map, slice, func or chan wrapped in one.
func MustInverse[K, V comparable](m BidirectionalMapping[K, V]) BidirectionalMapping[V, K] {
	inv := m.Inverse()
	if unset(inv) {
		panic(&UnimplementedError{Capability: "Inverse", Type: fmt.Sprintf("%T", m)})
	}

	return inv
}

func unset(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// InvertedItems is the default InvertedItems for implementations that store
// their inverse: it yields the inverse's own items rather than swapping the
// entries of m. Each call returns a fresh sequence. Mutating m while the
// sequence is consumed is implementation-defined.
func InvertedItems[K, V comparable](m BidirectionalMapping[K, V]) iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		for v, k := range MustInverse(m).Items() {
			if !yield(v, k) {
				return
			}
		}
	}
}

// InvertedSeq swaps every pair of seq on the fly.
func InvertedSeq[K, V any](seq iter.Seq2[K, V]) iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		for k, v := range seq {
			if !yield(v, k) {
				return
			}
		}
	}
}

// Inverted yields the (value, key) pairs of c. When c is a
// BidirectionalMapping its InvertedItems is used; any other mapping is
// inverted on the fly.
func Inverted[K, V comparable](c Core[K, V]) iter.Seq2[V, K] {
	if bm, ok := c.(BidirectionalMapping[K, V]); ok {
		return bm.InvertedItems()
	}

	return InvertedSeq(Items(c))
}
