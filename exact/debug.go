package exact

import "github.com/gocliques/clisat/graph"

// debugBruteForceMaxSize bounds the candidate-set size the invariant
// checker will brute-force over; beyond it the 2^|S| enumeration is too
// expensive even for a debug build, so larger nodes skip the check.
const debugBruteForceMaxSize = 20

// checkPruningInvariant independently verifies spec.md §8 property 9 at
// one recursion node: no vertex of P can extend K into a clique strictly
// larger than the incumbent bound. It brute-forces the true maximum
// clique size inside the induced subgraph on P (by plain subset
// enumeration, deliberately not reusing ISEQ/SATCOL so the check is
// independent of the code path it audits) and compares it against the
// coloring bound the search just relied on to prune.
//
// Returns graph.ErrInvariantViolation if the coloring bound understated
// what P can actually reach — i.e. the search would have pruned away the
// true optimum. Skipped (nil) when P is larger than
// debugBruteForceMaxSize, or empty.
func checkPruningInvariant(g *graph.Graph, kLen int, P graph.BitSet, bound int) error {
	members := P.Slice()
	if len(members) == 0 || len(members) > debugBruteForceMaxSize {
		return nil
	}

	trueMax := bruteForceMaxClique(g, members)
	if kLen+trueMax > bound {
		return graph.ErrInvariantViolation
	}
	return nil
}

// bruteForceMaxClique returns the size of the largest clique within the
// induced subgraph on members, by exhaustive subset enumeration. Only
// ever called by checkPruningInvariant on small candidate sets.
func bruteForceMaxClique(g *graph.Graph, members []int) int {
	m := len(members)
	best := 0
	for mask := 1; mask < (1 << uint(m)); mask++ {
		size := popcountInt(mask)
		if size <= best {
			continue
		}
		if isCliqueMask(g, members, mask) {
			best = size
		}
	}
	return best
}

func popcountInt(x int) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}
	return c
}

func isCliqueMask(g *graph.Graph, members []int, mask int) bool {
	var chosen []int
	for i, v := range members {
		if mask&(1<<uint(i)) != 0 {
			chosen = append(chosen, v)
		}
	}
	for i := 0; i < len(chosen); i++ {
		for j := i + 1; j < len(chosen); j++ {
			if !g.Adjacent(chosen[i], chosen[j]) {
				return false
			}
		}
	}
	return true
}
