package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocliques/clisat/graph"
)

func TestBitSet_SetHasClear(t *testing.T) {
	b := graph.NewBitSet(130) // spans more than two words
	require.True(t, b.IsEmpty())

	b.Set(0)
	b.Set(64)
	b.Set(129)
	require.True(t, b.Has(0))
	require.True(t, b.Has(64))
	require.True(t, b.Has(129))
	require.False(t, b.Has(63))
	require.Equal(t, 3, b.PopCount())

	b.Clear(64)
	require.False(t, b.Has(64))
	require.Equal(t, 2, b.PopCount())
}

func TestBitSet_AndOrAndNot(t *testing.T) {
	a := graph.NewBitSet(10)
	c := graph.NewBitSet(10)
	for _, v := range []int{1, 2, 3, 4} {
		a.Set(v)
	}
	for _, v := range []int{3, 4, 5} {
		c.Set(v)
	}

	require.ElementsMatch(t, []int{3, 4}, a.And(c).Slice())
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, a.Or(c).Slice())
	require.ElementsMatch(t, []int{1, 2}, a.AndNot(c).Slice())
	require.True(t, a.Intersects(c))
}

func TestBitSet_FillAndRange(t *testing.T) {
	b := graph.NewBitSet(5)
	b.Fill(5)
	require.Equal(t, []int{0, 1, 2, 3, 4}, b.Slice())

	var seen []int
	b.Range(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []int{0, 1, 2}, seen)
}

func TestBitSet_Clone_Independent(t *testing.T) {
	a := graph.NewBitSet(8)
	a.Set(3)
	clone := a.Clone()
	clone.Set(4)
	require.False(t, a.Has(4))
	require.True(t, clone.Has(3))
}
