package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocliques/clisat/graph"
)

// TestBuild_Symmetric verifies that AddEdge-equivalent construction mirrors
// adjacency both ways and computes degree correctly.
func TestBuild_Symmetric(t *testing.T) {
	g, err := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 0))
	require.False(t, g.Adjacent(0, 2))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
}

// TestBuild_SelfLoopRejected ensures self-loops are fatal at construction.
func TestBuild_SelfLoopRejected(t *testing.T) {
	_, err := graph.Build(3, [][2]int{{1, 1}})
	require.ErrorIs(t, err, graph.ErrInvalidGraph)
}

// TestBuild_OutOfRangeRejected ensures out-of-range endpoints are fatal.
func TestBuild_OutOfRangeRejected(t *testing.T) {
	_, err := graph.Build(3, [][2]int{{0, 5}})
	require.ErrorIs(t, err, graph.ErrInvalidGraph)
}

// TestBuild_DuplicateEdgeIdempotent ensures repeated edges don't corrupt degree.
func TestBuild_DuplicateEdgeIdempotent(t *testing.T) {
	g, err := graph.Build(2, [][2]int{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
}

// TestInduced verifies Induced intersects the candidate set with neighbors.
func TestInduced(t *testing.T) {
	g, err := graph.Build(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}})
	require.NoError(t, err)

	S := graph.NewBitSet(5)
	S.Fill(5)

	dst := graph.NewBitSet(5)
	g.Induced(dst, S, 0)
	require.ElementsMatch(t, []int{1, 2, 3}, dst.Slice())
}
