package exact

import (
	"sort"

	"github.com/gocliques/clisat/graph"
)

// ColorSort computes the fixed outer vertex ordering used by every ISEQ
// call in a solve: descending degree, then descending neighborhood
// density, then ascending vertex id as the final tiebreak.
//
// Neighborhood density of v is |E(G[N(v)])| / C(|N(v)|,2), or 0 when
// |N(v)| < 2. This ordering is computed once per solve and never
// changes; determinism of ISEQ (and therefore of the whole exact search)
// depends on every caller iterating in exactly this order.
//
// Complexity: O(n * avgDegree^2) to compute densities (bitset
// intersections per neighbor), plus O(n log n) to sort.
func ColorSort(g *graph.Graph) []int {
	n := g.N()
	order := make([]int, n)
	density := make([]float64, n)
	for v := 0; v < n; v++ {
		order[v] = v
		density[v] = neighborhoodDensity(g, v)
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if da, db := g.Degree(a), g.Degree(b); da != db {
			return da > db
		}
		if density[a] != density[b] {
			return density[a] > density[b]
		}
		return a < b
	})
	return order
}

// neighborhoodDensity computes |E(G[N(v)])| / C(|N(v)|,2).
func neighborhoodDensity(g *graph.Graph, v int) float64 {
	deg := g.Degree(v)
	if deg < 2 {
		return 0
	}

	neigh := g.Neighbors(v)
	tmp := graph.NewBitSet(g.N())
	edges := 0
	neigh.Range(func(u int) bool {
		graph.AndInto(tmp, neigh, g.Neighbors(u))
		edges += tmp.PopCount()
		return true
	})
	edges /= 2 // each edge counted from both endpoints

	possible := float64(deg) * float64(deg-1) / 2
	return float64(edges) / possible
}

// adjacentToAll reports whether v is adjacent to every member of clique.
func adjacentToAll(g *graph.Graph, v int, clique []int) bool {
	for _, u := range clique {
		if !g.Adjacent(v, u) {
			return false
		}
	}
	return true
}

// GreedyInitial builds an initial feasible clique by scanning vertices in
// COLOR-SORT order (primarily decreasing degree) and greedily admitting
// any vertex adjacent to every current member. Once the clique reaches
// size 4, the not-yet-scanned remainder is reordered once by
// (is-common-neighbor-of-clique, degree) descending before the scan
// continues — concentrating the rest of the search on vertices most
// likely to extend the clique further.
//
// Returns the clique found; its length is the initial lower bound lb0.
func GreedyInitial(g *graph.Graph, order []int) []int {
	clique := make([]int, 0, g.N())
	remaining := append([]int(nil), order...)
	reordered := false

	for i := 0; i < len(remaining); i++ {
		v := remaining[i]
		if !adjacentToAll(g, v, clique) {
			continue
		}
		clique = append(clique, v)

		if len(clique) == 4 && !reordered {
			reordered = true
			tail := append([]int(nil), remaining[i+1:]...)
			sortByCommonNeighborThenDegree(g, tail, clique)
			remaining = append(remaining[:i+1:i+1], tail...)
		}
	}
	return clique
}

// sortByCommonNeighborThenDegree reorders rest in place by
// (is adjacent to every member of clique) descending, then degree
// descending, then id ascending.
func sortByCommonNeighborThenDegree(g *graph.Graph, rest []int, clique []int) {
	sort.Slice(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		ca, cb := adjacentToAll(g, a, clique), adjacentToAll(g, b, clique)
		if ca != cb {
			return ca
		}
		if da, db := g.Degree(a), g.Degree(b); da != db {
			return da > db
		}
		return a < b
	})
}
