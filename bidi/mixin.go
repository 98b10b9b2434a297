package bidi

import "iter"

// Mixin derives the read-only Mapping surface from a Core.
//
// Embed it in a type that implements Lookup, Iter and Len and initialize it
// with NewMixin(self). Until then the derived methods see an empty mapping:
//
//	type Table struct {
//		bidi.Mixin[string, int]
//		fwd map[string]int
//	}
//
//	t := &Table{fwd: m}
//	t.Mixin = bidi.NewMixin[string, int](t)
type Mixin[K, V comparable] struct {
	core Core[K, V]
}

// NewMixin returns a Mixin backed by core.
func NewMixin[K, V comparable](core Core[K, V]) Mixin[K, V] {
	return Mixin[K, V]{core: core}
}

// empty is the Core of a zero Mixin.
type empty[K, V comparable] struct{}

func (empty[K, V]) Lookup(K) (V, bool) {
	var zero V
	return zero, false
}

func (empty[K, V]) Iter() iter.Seq[K] {
	return func(func(K) bool) {}
}

func (empty[K, V]) Len() int {
	return 0
}

// source returns the backing Core. A zero Mixin reads as an empty mapping.
func (m Mixin[K, V]) source() Core[K, V] {
	if m.core == nil {
		return empty[K, V]{}
	}

	return m.core
}

// Contains reports whether key is present.
func (m Mixin[K, V]) Contains(key K) bool {
	return Contains(m.source(), key)
}

// Keys yields every key.
func (m Mixin[K, V]) Keys() iter.Seq[K] {
	return m.source().Iter()
}

// Items yields every (key, value) entry in key iteration order.
func (m Mixin[K, V]) Items() iter.Seq2[K, V] {
	return Items(m.source())
}

// Values yields every value in key iteration order.
func (m Mixin[K, V]) Values() iter.Seq[V] {
	return Values(m.source())
}

// Get returns the value for key, or def when key is absent.
func (m Mixin[K, V]) Get(key K, def V) V {
	return Get(m.source(), key, def)
}

// Equal reports whether other holds exactly the same entries.
func (m Mixin[K, V]) Equal(other Core[K, V]) bool {
	return Equal(m.source(), other)
}

// NotEqual is the negation of Equal.
func (m Mixin[K, V]) NotEqual(other Core[K, V]) bool {
	return !Equal(m.source(), other)
}

// Contains reports whether key is present in c.
func Contains[K, V comparable](c Core[K, V], key K) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Items yields the entries of c by looking up every key it iterates.
func Items[K, V comparable](c Core[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k := range c.Iter() {
			v, ok := c.Lookup(k)
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Values yields the values of c in key iteration order.
func Values[K, V comparable](c Core[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range Items(c) {
			if !yield(v) {
				return
			}
		}
	}
}

// Get returns the value for key in c, or def when key is absent.
func Get[K, V comparable](c Core[K, V], key K, def V) V {
	if v, ok := c.Lookup(key); ok {
		return v
	}

	return def
}

// Equal reports whether a and b hold the same entries. Order is ignored.
func Equal[K, V comparable](a, b Core[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Len() != b.Len() {
		return false
	}

	for k, v := range Items(a) {
		other, ok := b.Lookup(k)
		if !ok || other != v {
			return false
		}
	}

	return true
}
