package grasp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocliques/clisat/grasp"
	"github.com/gocliques/clisat/graph"
)

// TestLocalSearch_AddExtendsToFullCliqueWithPendant starts local search
// from a proper subset of a K4 (plus a pendant vertex hanging off vertex
// 0) and expects
// ADD to grow it back to the full 4-clique.
func TestLocalSearch_AddExtendsToFullCliqueWithPendant(t *testing.T) {
	g, err := graph.Build(5, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {0, 4},
	})
	require.NoError(t, err)

	K := grasp.LocalSearch(g, []int{0, 1}, grasp.DefaultIntensity)
	require.True(t, graph.IsClique(g, K))
	require.Len(t, K, 4)
	require.NotContains(t, K, 4)
}

// TestLocalSearch_NeverReturnsSmallerClique ensures the local search
// never regresses below the starting clique's size.
func TestLocalSearch_NeverReturnsSmallerClique(t *testing.T) {
	g, err := graph.Build(6, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3},
	})
	require.NoError(t, err)

	start := []int{0, 1, 2}
	K := grasp.LocalSearch(g, start, grasp.DefaultIntensity)
	require.True(t, graph.IsClique(g, K))
	require.GreaterOrEqual(t, len(K), len(start))
}

// TestLocalSearch_TerminatesOnCompleteGraph checks local search halts
// (doesn't loop forever) once K already spans the whole complete graph.
func TestLocalSearch_TerminatesOnCompleteGraph(t *testing.T) {
	edges := [][2]int{}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g, err := graph.Build(5, edges)
	require.NoError(t, err)

	K := grasp.LocalSearch(g, []int{0, 1, 2, 3, 4}, grasp.DefaultIntensity)
	require.True(t, graph.IsClique(g, K))
	require.Len(t, K, 5)
}
