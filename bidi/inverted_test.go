package bidi_test

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidimap/bidi"
	"bidimap/examples/frozen"
	"bidimap/examples/shapes"
)

func newAB(t *testing.T) *frozen.Bidict[int, string] {
	t.Helper()

	a, err := frozen.New(bidi.Pair[int, string]{Key: 1, Value: "a"}, bidi.Pair[int, string]{Key: 2, Value: "b"})
	require.NoError(t, err)

	return a
}

func TestInvertedItems_Scenario(t *testing.T) {
	a := newAB(t)
	b := a.Inverse()

	got := bidi.Collect(a.InvertedItems())
	assert.Equal(t, []bidi.Pair[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, got)
	assert.Equal(t, bidi.Collect(b.Items()), got, "must follow the inverse's iteration order")

	v, ok := b.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Same(t, a, b.Inverse())
}

func TestInverse_Involution(t *testing.T) {
	a := newAB(t)
	assert.Same(t, a, a.Inverse().Inverse())

	h := shapes.NewHashed(map[string]int{"x": 1, "y": 2})
	assert.Same(t, h, h.Inverse().Inverse())
}

func TestInverse_EntryDuality(t *testing.T) {
	a := frozen.MustNew(
		bidi.Pair[string, int]{Key: "one", Value: 1},
		bidi.Pair[string, int]{Key: "two", Value: 2},
		bidi.Pair[string, int]{Key: "three", Value: 3},
	)
	inv := a.Inverse()

	require.Equal(t, a.Len(), inv.Len())
	for k, v := range a.Items() {
		back, ok := inv.Lookup(v)
		assert.True(t, ok, "missing inverse entry for %v", v)
		assert.Equal(t, k, back)
	}
	for v, k := range inv.Items() {
		fwd, ok := a.Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, v, fwd)
	}
}

func TestInvertedItems_MatchesOnTheFly(t *testing.T) {
	h := shapes.NewHashed(map[string]int{"x": 1, "y": 2, "z": 3})

	direct := bidi.Collect(h.InvertedItems())
	swapped := bidi.Collect(bidi.InvertedSeq(h.Items()))

	byKey := func(a, b bidi.Pair[int, string]) int { return a.Key - b.Key }
	slices.SortFunc(direct, byKey)
	slices.SortFunc(swapped, byKey)
	assert.Equal(t, swapped, direct, spew.Sdump(direct, swapped))
}

func TestInvertedItems_Restartable(t *testing.T) {
	a := newAB(t)
	seq := a.InvertedItems()

	first := bidi.Collect(seq)
	second := bidi.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestInvertedItems_EarlyStop(t *testing.T) {
	a := newAB(t)

	var seen []string
	for v := range a.InvertedItems() {
		seen = append(seen, v)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestMustInverse_Unset(t *testing.T) {
	var zero frozen.Bidict[int, string]

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, bidi.ErrUnimplemented))

		var unimpl *bidi.UnimplementedError
		require.ErrorAs(t, err, &unimpl)
		assert.Equal(t, "Inverse", unimpl.Capability)
		assert.Contains(t, unimpl.Error(), "frozen.Bidict")
	}()

	_ = bidi.Collect(zero.InvertedItems())
}

func TestMustInverse_TypedNil(t *testing.T) {
	zero := &shapes.Hashed[int, string]{}
	require.True(t, zero.Inverse() != nil, "the interface holds a nil *Hashed")

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, bidi.ErrUnimplemented)

		var unimpl *bidi.UnimplementedError
		require.ErrorAs(t, err, &unimpl)
		assert.Contains(t, unimpl.Type, "shapes.Hashed")
	}()

	_ = bidi.Collect(bidi.InvertedItems[int, string](zero))
}

// plainMap is a Core that knows nothing of inverses.
type plainMap map[string]int

func (p plainMap) Lookup(key string) (int, bool) {
	v, ok := p[key]
	return v, ok
}

func (p plainMap) Iter() iter.Seq[string] {
	return maps.Keys(p)
}

func (p plainMap) Len() int {
	return len(p)
}

func TestInverted_UsesInvertedItems(t *testing.T) {
	a := newAB(t)
	assert.Equal(t, bidi.Collect(a.InvertedItems()), bidi.Collect(bidi.Inverted[int, string](a)))
}

func TestInverted_FallsBackToSwapping(t *testing.T) {
	p := plainMap{"a": 1, "b": 2}

	got := bidi.Collect(bidi.Inverted[string, int](p))
	slices.SortFunc(got, func(a, b bidi.Pair[int, string]) int { return a.Key - b.Key })
	assert.Equal(t, []bidi.Pair[int, string]{{Key: 1, Value: "a"}, {Key: 2, Value: "b"}}, got)
}
