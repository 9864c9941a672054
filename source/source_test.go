package source_test

import (
	"slices"
	"testing"

	"github.com/pink-mist/lazyutil/sequence"
	"github.com/pink-mist/lazyutil/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a deferred value exposing the Forceable capability.
type box struct {
	vs []int
}

func (b *box) Force() (int, bool) {
	if len(b.vs) == 0 {
		return 0, false
	}
	v := b.vs[0]
	b.vs = b.vs[1:]
	return v, true
}

func TestValue(t *testing.T) {
	s := source.Value("hello").Sequence()
	assert.Equal(t, []string{"hello"}, s.Drain())
}

func TestFunc(t *testing.T) {
	n := 0
	src := source.Func(func() (int, bool) {
		n++
		if n > 3 {
			return 0, false
		}
		return n, true
	})
	assert.Equal(t, []int{1, 2, 3}, src.Sequence().Drain())
}

func TestSeq(t *testing.T) {
	underlying := sequence.Of(1, 2)
	src := source.Seq(underlying)

	got, ok := src.Unwrap()
	require.True(t, ok)
	assert.Same(t, underlying, got)
	assert.Same(t, underlying, src.Sequence())
}

func TestIter(t *testing.T) {
	src := source.Iter(slices.Values([]int{4, 5, 6}))
	assert.Equal(t, []int{4, 5, 6}, src.Sequence().Drain())
}

func TestDeferred(t *testing.T) {
	src := source.Deferred(&box{vs: []int{7, 8}})
	assert.Equal(t, []int{7, 8}, src.Sequence().Drain())
}

func TestZeroSourceIsEmpty(t *testing.T) {
	var src source.Source[int]
	assert.Empty(t, src.Sequence().Drain())
}

func TestNilConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { source.Func[int](nil) })
	assert.Panics(t, func() { source.Seq[int](nil) })
	assert.Panics(t, func() { source.Iter[int](nil) })
	assert.Panics(t, func() { source.Deferred[int](nil) })
}

func TestFrom(t *testing.T) {
	n := 0
	producer := func() (int, bool) {
		n++
		if n > 2 {
			return 0, false
		}
		return n * 10, true
	}

	tests := []struct {
		name string
		arg  any
		want []int
	}{
		{name: "literal", arg: 42, want: []int{42}},
		{name: "producer", arg: producer, want: []int{10, 20}},
		{name: "sequence", arg: sequence.Of(1, 2, 3), want: []int{1, 2, 3}},
		{name: "iterator", arg: slices.Values([]int{5, 6}), want: []int{5, 6}},
		{name: "deferred", arg: &box{vs: []int{9}}, want: []int{9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := source.From[int](tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Sequence().Drain())
		})
	}
}

func TestFromUnsupported(t *testing.T) {
	_, err := source.From[int]("not an int source")
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrUnsupportedSource)

	_, err = source.From[int](struct{ x int }{x: 1})
	assert.ErrorIs(t, err, source.ErrUnsupportedSource)
}

func TestFromSequenceIdentity(t *testing.T) {
	underlying := sequence.Of(1)
	src, err := source.From[int](underlying)
	require.NoError(t, err)
	assert.Same(t, underlying, src.Sequence())
}
