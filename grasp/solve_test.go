package grasp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocliques/clisat/grasp"
	"github.com/gocliques/clisat/graph"
)

// TestSolve_FindsPlantedClique covers a GRASP analogue of scenario E5: a
// planted clique embedded in a sparser graph should be found within a
// modest iteration budget.
func TestSolve_FindsPlantedClique(t *testing.T) {
	edges := [][2]int{}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	edges = append(edges, [2]int{0, 6}, [2]int{6, 7}, [2]int{1, 8})

	g, err := graph.Build(9, edges)
	require.NoError(t, err)

	opts := grasp.DefaultOptions()
	opts.MaxIterations = 50
	opts.Seed = 123

	res, err := grasp.Solve(g, opts)
	require.NoError(t, err)
	require.False(t, res.IsOptimal)
	require.True(t, graph.IsClique(g, res.Clique))
	require.Equal(t, 6, res.Size)
	require.NotNil(t, res.Grasp)
	require.Equal(t, 50, res.Grasp.TotalIterations)
}

// TestSolve_DeterministicGivenSeed checks that two Solve calls with the
// same seed and options reproduce the same result (property 5).
func TestSolve_DeterministicGivenSeed(t *testing.T) {
	g, err := graph.Build(8, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {0, 3},
	})
	require.NoError(t, err)

	opts := grasp.DefaultOptions()
	opts.MaxIterations = 30
	opts.Seed = 99

	a, err := grasp.Solve(g, opts)
	require.NoError(t, err)
	b, err := grasp.Solve(g, opts)
	require.NoError(t, err)
	require.Equal(t, a.Clique, b.Clique)
}

// TestSolve_MaxNoImprovementStopsEarly checks that a tiny stagnation
// bound ends the search well before MaxIterations on a trivial instance.
func TestSolve_MaxNoImprovementStopsEarly(t *testing.T) {
	g, err := graph.Build(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	opts := grasp.DefaultOptions()
	opts.MaxIterations = 10000
	opts.MaxNoImprovement = 5
	opts.Seed = 1

	res, err := grasp.Solve(g, opts)
	require.NoError(t, err)
	require.Equal(t, 3, res.Size)
	require.Less(t, res.Grasp.TotalIterations, 10000)
}
