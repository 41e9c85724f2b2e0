package exact

import (
	"time"

	"github.com/gocliques/clisat/coloring"
	"github.com/gocliques/clisat/graph"
)

// filterPhaseMinSize is the smallest candidate-set size routed to the
// Filter Phase when the set tests k-partite; smaller sets always take the
// SATCOL path, although the k-partite test itself runs at every node.
// Below this size, the Filter Phase's extra ISEQ passes cost more than the
// SATCOL path they would replace (spec.md §4.6).
const filterPhaseMinSize = 8

// searchEngine carries the mutable state of one exact solve's recursion
// tree: the graph, the fixed COLOR-SORT order, the running incumbent,
// the deadline, and the coloring cache shared by every FiltCOL call. One
// searchEngine serves exactly one Solve invocation, mirroring the
// teacher's bbEngine (tsp/bb.go) — a single struct threading shared
// search state through a recursive DFS instead of passing it by hand.
type searchEngine struct {
	g     *graph.Graph
	order []int

	deadline    time.Time
	hasDeadline bool
	satBudget   int

	bestClique []int
	bound      int // max(len(bestClique), any externally supplied warm-start lb)
	stats      graph.ExactStats

	cache *ColoringCache

	debugChecks  bool
	invariantErr error
}

func newSearchEngine(g *graph.Graph, order []int, satBudget int) *searchEngine {
	return &searchEngine{
		g:         g,
		order:     order,
		satBudget: satBudget,
		cache:     NewColoringCache(),
	}
}

func (e *searchEngine) withDeadline(d time.Time) {
	e.deadline = d
	e.hasDeadline = true
}

func (e *searchEngine) timedOut() bool {
	return e.hasDeadline && time.Now().After(e.deadline)
}

// expand is the recursive branch-and-bound step (spec.md §4.8). K is the
// clique assembled on the current path; S is the surviving candidate set
// (vertices adjacent to every member of K, not yet excluded by a bound).
// It returns true if the caller should keep searching; false means the
// deadline fired (or, with debug checks on, the pruning invariant check
// failed) and every caller up the stack should unwind immediately.
func (e *searchEngine) expand(K []int, S graph.BitSet) bool {
	e.stats.NodesExplored++
	if e.timedOut() {
		return false
	}

	// Step 2: record K_hat as the new incumbent whenever it beats the
	// running bound, unconditionally and before any pruning test runs —
	// a clique can cross the bound at any node, not only at a leaf whose
	// candidate set has run dry. Deferring this to the S.IsEmpty() leaf
	// (as an earlier revision did) silently abandons every deeper child
	// whose own candidate set is still non-empty at the moment it ties
	// the bound, along with that child's whole subtree.
	e.recordIfBetter(K)

	if S.IsEmpty() {
		return true
	}

	// k is the number of color classes worth proving (spec.md §4.8 step
	// 3): S can extend K past the incumbent only by contributing more
	// than e.bound-len(K) vertices, so that is the coloring budget, with
	// no off-by-one pad. k can be zero or negative right after the
	// recordIfBetter call above just raised e.bound to len(K); ISEQ and
	// SATCOL already treat k<=0 as "zero color classes, everything
	// uncolored" (mirroring iseq_coloring's k<=0 short-circuit), so S
	// still gets a full failed-literal pass and a real chance to branch
	// instead of being cut off by a guard the search procedure never had.
	k := e.bound - len(K)

	var P, B graph.BitSet
	if near, _ := coloring.IsKPartite(e.g, e.order, S, k); near && S.PopCount() >= filterPhaseMinSize {
		P, B, _ = FilterPhase(e.g, e.order, S, k, e.cache, e.satBudget, &e.stats)
	} else {
		P, B, _ = SATCOL(e.g, e.order, S, k, nil, e.satBudget, &e.stats)
	}

	if e.debugChecks {
		if err := checkPruningInvariant(e.g, len(K), P, e.bound); err != nil {
			e.invariantErr = err
			return false
		}
	}

	// Step 4: an empty branching set means every vertex of S is provably
	// unable to extend K past the incumbent via the coloring bound —
	// prune outright without ever inspecting P.
	if B.IsEmpty() {
		e.stats.PrunedByBound++
		return true
	}

	// Branch over B in COLOR-SORT order (spec.md §4.8 step 5): each
	// candidate b becomes the next clique member. Its child candidate set
	// is every vertex of P adjacent to b, plus every vertex of B with a
	// smaller COLOR-SORT rank than b (already iterated over in this same
	// loop) that is adjacent to b — the standard without-replacement
	// restriction that lets each subset of B reach the incumbent through
	// exactly one canonical branch.
	var branching []int
	for _, v := range e.order {
		if B.Has(v) {
			branching = append(branching, v)
		}
	}

	n := e.g.N()
	for i, b := range branching {
		nextK := make([]int, len(K), len(K)+1)
		copy(nextK, K)
		nextK = append(nextK, b)

		nextS := graph.AndInto(graph.NewBitSet(n), P, e.g.Neighbors(b))
		for _, done := range branching[:i] {
			if e.g.Adjacent(b, done) {
				nextS.Set(done)
			}
		}

		if !e.expand(nextK, nextS) {
			return false
		}
	}

	return true
}

func (e *searchEngine) recordIfBetter(K []int) {
	if len(K) > len(e.bestClique) {
		e.bestClique = append([]int(nil), K...)
	}
	if len(K) > e.bound {
		e.bound = len(K)
	}
}
