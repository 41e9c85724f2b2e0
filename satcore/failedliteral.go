package satcore

import (
	"github.com/gocliques/clisat/coloring"
	"github.com/gocliques/clisat/graph"
)

// IsFailedLiteral tests whether vertex v can possibly extend the partial
// clique bounded by col: it builds P-MAX over col with v appended as its
// own singleton color class, and asks whether that formula is
// satisfiable.
//
// If UNSAT, v cannot be combined with one representative from every
// existing class into a pairwise-adjacent selection — v is a "failed
// literal" and the caller should move it into the pruned set P.
//
// budget bounds the embedded DPLL's decision count (see Solve); if it is
// exhausted, IsFailedLiteral returns (false, ErrSatError) — the sound
// "cannot prune" fallback — and the caller must leave v in B.
func IsFailedLiteral(g *graph.Graph, col coloring.Coloring, v int, budget int) (bool, error) {
	augmented := coloring.Coloring{
		Classes: append(append([]coloring.ColorClass{}, col.Classes...),
			coloring.ColorClass{Vertices: []int{v}}),
	}
	cnf := BuildPMax(g, augmented)
	sat, err := Solve(cnf, budget)
	if err != nil {
		return false, err
	}
	return !sat, nil
}
