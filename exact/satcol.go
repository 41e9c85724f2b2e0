package exact

import (
	"github.com/gocliques/clisat/coloring"
	"github.com/gocliques/clisat/graph"
	"github.com/gocliques/clisat/satcore"
)

// SATCOL refines a coloring of S into a pruned set P (provably unable to
// extend K_hat beyond the current incumbent) and a branching set B.
//
// If col is nil, a fresh ISEQ(S, kMax) coloring is computed first.
// Otherwise the caller's coloring (e.g. a cached reference coloring) is
// reused as-is. P starts as the union of every color class; every
// vertex of S left uncolored by ISEQ starts in B. Each v in B is then
// tested with the embedded SAT failed-literal test (in COLOR-SORT
// order, for determinism); a failed literal moves from B into P.
//
// A SAT budget exhaustion (satcore.ErrSatError) for a given v is the
// sound "cannot prune" fallback: v simply stays in B. SATCOL itself
// never returns an error.
//
// Contract: P is never grown past provable non-extenders; SATCOL must
// never move a vertex into P that is not either already colored or a
// genuine failed literal (soundness, spec.md §4.5).
func SATCOL(
	g *graph.Graph,
	order []int,
	S graph.BitSet,
	kMax int,
	col *coloring.Coloring,
	satBudget int,
	stats *graph.ExactStats,
) (P, B graph.BitSet, used coloring.Coloring) {
	stats.SatcolCalls++

	if col != nil {
		used = *col
	} else {
		used = coloring.ISEQ(g, order, S, kMax)
	}

	n := g.N()
	P = used.Colored(n)
	B = graph.AndNotInto(graph.NewBitSet(n), S, P)

	// Snapshot B's members in COLOR-SORT order before mutating it.
	var branching []int
	for _, v := range order {
		if B.Has(v) {
			branching = append(branching, v)
		}
	}

	for _, v := range branching {
		stats.SatCalls++
		failed, err := satcore.IsFailedLiteral(g, used, v, satBudget)
		if err != nil {
			continue // SatError: sound fallback, leave v in B.
		}
		if failed {
			P.Set(v)
			B.Clear(v)
		}
	}

	return P, B, used
}
