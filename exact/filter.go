package exact

import (
	"github.com/gocliques/clisat/coloring"
	"github.com/gocliques/clisat/graph"
	"github.com/gocliques/clisat/satcore"
)

// ColoringCache memoizes ISEQ colorings for FiltCOL, keyed on the
// candidate set's content (BitSet.Hash), not on Go object identity.
//
// Open Question resolution (spec.md §9): the original source keys its
// reference-coloring cache on object identity, which is unstable across
// freshly re-induced subgraph views and risks aliasing unrelated sibling
// subtrees onto the same cache slot. This module keys on content
// instead, which is always stable and never aliases two different
// candidate sets that happen to reuse the same view object.
//
// A ColoringCache belongs to exactly one recursion tree (one Solve
// call); it is never shared across solves (spec.md §5).
type ColoringCache struct {
	entries map[uint64]coloring.Coloring
}

// NewColoringCache returns an empty cache.
func NewColoringCache() *ColoringCache {
	return &ColoringCache{entries: make(map[uint64]coloring.Coloring)}
}

// FiltCOL retrieves a cached reference coloring for S, or computes and
// caches a fresh ISEQ(S, kMax) coloring if none exists. Returns the
// coloring and the set of vertices it colors (P_filt); S minus that is
// B_filt.
func FiltCOL(g *graph.Graph, order []int, S graph.BitSet, kMax int, cache *ColoringCache) (pFilt graph.BitSet, col coloring.Coloring) {
	key := S.Hash()
	if cached, ok := cache.entries[key]; ok {
		col = cached
	} else {
		col = coloring.ISEQ(g, order, S, kMax)
		cache.entries[key] = col
	}
	return col.Colored(g.N()), col
}

// FiltSAT refines B_filt (= S \ P_filt) against P_filt: for each v in
// B_filt, a fresh coloring of P_filt U {v} is built with up to
// |P_filt|+1 classes, and the failed-literal test is applied to v within
// that coloring. A failed literal moves v from B into P.
func FiltSAT(
	g *graph.Graph,
	order []int,
	pFilt graph.BitSet,
	bFilt graph.BitSet,
	satBudget int,
	stats *graph.ExactStats,
) (P, B graph.BitSet) {
	stats.FilterCalls++

	P = pFilt.Clone()
	B = bFilt.Clone()
	kMax := pFilt.PopCount() + 1

	var branching []int
	for _, v := range order {
		if bFilt.Has(v) {
			branching = append(branching, v)
		}
	}

	for _, v := range branching {
		S := pFilt.Clone()
		S.Set(v)
		col := coloring.ISEQ(g, order, S, kMax)

		stats.SatCalls++
		failed, err := satcore.IsFailedLiteral(g, col, v, satBudget)
		if err != nil {
			continue // SatError: sound fallback, leave v in B.
		}
		if failed {
			P.Set(v)
			B.Clear(v)
		}
	}

	return P, B
}

// FilterPhase runs FiltCOL followed by FiltSAT, the combined refinement
// path used when the candidate set is near-k-partite (spec.md §4.6).
func FilterPhase(
	g *graph.Graph,
	order []int,
	S graph.BitSet,
	kMax int,
	cache *ColoringCache,
	satBudget int,
	stats *graph.ExactStats,
) (P, B graph.BitSet, col coloring.Coloring) {
	pFilt, col := FiltCOL(g, order, S, kMax, cache)
	bFilt := graph.AndNotInto(graph.NewBitSet(g.N()), S, pFilt)
	P, B = FiltSAT(g, order, pFilt, bFilt, satBudget, stats)
	return P, B, col
}
