package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocliques/clisat/exact"
	"github.com/gocliques/clisat/graph"
)

// TestColorSort_DescendingDegree checks the primary sort key: vertices
// never appear out of non-increasing degree order.
func TestColorSort_DescendingDegree(t *testing.T) {
	g, err := graph.Build(5, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
	})
	require.NoError(t, err)

	order := exact.ColorSort(g)
	for i := 1; i < len(order); i++ {
		require.GreaterOrEqual(t, g.Degree(order[i-1]), g.Degree(order[i]))
	}
	require.Equal(t, 0, order[0]) // vertex 0 has the unique max degree (4)
}

// TestColorSort_Deterministic verifies repeated calls on the same graph
// produce byte-identical orderings (property 5).
func TestColorSort_Deterministic(t *testing.T) {
	g, err := graph.Build(6, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 2},
	})
	require.NoError(t, err)

	a := exact.ColorSort(g)
	b := exact.ColorSort(g)
	require.Equal(t, a, b)
}

// TestGreedyInitial_FindsCliqueInK4Plus checks that GreedyInitial finds a
// full K4 when one exists, even with a pendant vertex attached.
func TestGreedyInitial_FindsCliqueInK4Plus(t *testing.T) {
	// K4 on {0,1,2,3} plus vertex 4 pendant off vertex 0.
	g, err := graph.Build(5, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {0, 4},
	})
	require.NoError(t, err)

	order := exact.ColorSort(g)
	clique := exact.GreedyInitial(g, order)
	require.True(t, graph.IsClique(g, clique))
	require.GreaterOrEqual(t, len(clique), 4)
}

// TestGreedyInitial_EmptyGraph ensures an edgeless graph yields a
// singleton (any vertex trivially forms a 1-clique).
func TestGreedyInitial_EmptyGraph(t *testing.T) {
	g, err := graph.Build(3, nil)
	require.NoError(t, err)

	order := exact.ColorSort(g)
	clique := exact.GreedyInitial(g, order)
	require.Len(t, clique, 1)
}
