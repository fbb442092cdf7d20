package rle

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_MergesAdjacentRuns(t *testing.T) {
	var b Builder[int]

	b.Push(1)
	b.PushN(1, 3)
	b.PushN(2, 2)
	b.Push(2)
	b.Push(1)

	require.Equal(t, 8, b.Len())
	require.Equal(t, 3, b.RunsLen())

	v := b.Build()
	require.Equal(t, []Run[int]{{1, 4}, {2, 3}, {1, 1}}, slices.Collect(v.Runs()))
	require.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 1}, v.Values())
}

func TestBuilder_IgnoresNonPositiveCounts(t *testing.T) {
	b := NewBuilder[int](-5)

	b.PushN(3, 0)
	b.PushN(3, -2)
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, b.RunsLen())

	b.PushN(3, 2)
	b.PushN(4, 0)
	v := b.Build()
	require.Equal(t, "[{3×2}]", v.String())
}

func TestBuilder_BuildResets(t *testing.T) {
	b := NewBuilder[string](2)
	b.PushN("x", 2)

	first := b.Build()
	require.Equal(t, 0, b.Len())

	b.Push("x")
	second := b.Build()

	require.Equal(t, []string{"x", "x"}, first.Values())
	require.Equal(t, []string{"x"}, second.Values())
}

func TestBuilder_AtAcrossMergedRuns(t *testing.T) {
	var b Builder[int]
	b.PushN(5, 2)
	b.PushN(5, 3)
	b.PushN(6, 1)

	v := b.Build()
	require.Equal(t, 2, v.RunsLen())

	for i := range 5 {
		got, ok := v.At(i)
		require.True(t, ok)
		require.Equal(t, 5, got)
	}
	got, ok := v.At(5)
	require.True(t, ok)
	require.Equal(t, 6, got)
}
