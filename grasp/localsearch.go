package grasp

import "github.com/gocliques/clisat/graph"

// DefaultIntensity is the outer-cycle cap used when Options.LocalSearchIntensity
// is unset: after this many improvement cycles produce no size gain,
// LocalSearch stops (spec.md §4.10).
const DefaultIntensity = 3

// LocalSearch repeatedly tries ADD, then SWAP, then REMOVE-ADD (in that
// fixed order) on K, accepting the first operator that succeeds and
// restarting the cycle from ADD. ADD and REMOVE-ADD grow the clique; a
// SWAP keeps its size and counts as a cycle with no size gain. It stops
// once intensity consecutive cycles pass with no size gain, or as soon as
// no operator applies.
func LocalSearch(g *graph.Graph, K []int, intensity int) []int {
	if intensity <= 0 {
		intensity = DefaultIntensity
	}

	current := append([]int(nil), K...)
	noGain := 0

	for noGain < intensity {
		sizeBefore := len(current)
		moved := false

		if next, ok := add(g, current); ok {
			current, moved = next, true
		} else if next, ok := swap(g, current); ok {
			current, moved = next, true
		} else if next, ok := removeAdd(g, current); ok {
			current, moved = next, true
		}

		if !moved {
			break // no operator could move K at all; nothing left to try
		}
		if len(current) > sizeBefore {
			noGain = 0
		} else {
			noGain++
		}
	}

	return current
}

// add returns K U {v} for the first v not in K adjacent to every member
// of K, scanning candidate vertices in ascending id order. ok is false
// if no such v exists.
func add(g *graph.Graph, K []int) (next []int, ok bool) {
	member := cliqueSet(g, K)
	for v := 0; v < g.N(); v++ {
		if member.Has(v) {
			continue
		}
		if adjacentToAll(g, v, K) {
			return append(append([]int(nil), K...), v), true
		}
	}
	return nil, false
}

// swap tries, for each v_out in K (in order) and each v_in not in K (in
// ascending id order), replacing v_out with v_in; it returns the first
// replacement that yields a valid clique of the same size. |K| never
// changes, but a different basin may let a later ADD succeed.
func swap(g *graph.Graph, K []int) (next []int, ok bool) {
	member := cliqueSet(g, K)
	for i, vOut := range K {
		rest := make([]int, 0, len(K)-1)
		rest = append(rest, K[:i]...)
		rest = append(rest, K[i+1:]...)

		for vIn := 0; vIn < g.N(); vIn++ {
			if member.Has(vIn) || vIn == vOut {
				continue
			}
			if adjacentToAll(g, vIn, rest) {
				candidate := append(append([]int(nil), rest...), vIn)
				return candidate, true
			}
		}
	}
	return nil, false
}

// removeAdd tries, for each v_out in K, dropping it and greedily
// re-expanding the remainder by repeatedly adding the viable vertex
// (adjacent to every current member) with the highest effective degree
// among the surviving candidate set, until no addition is possible. It
// returns the best (largest) expansion found across every v_out that
// strictly beats |K|.
func removeAdd(g *graph.Graph, K []int) (next []int, ok bool) {
	best := append([]int(nil), K...)

	for i := range K {
		base := make([]int, 0, len(K)-1)
		base = append(base, K[:i]...)
		base = append(base, K[i+1:]...)

		expanded := greedyReexpand(g, base)
		if len(expanded) > len(best) {
			best = expanded
		}
	}

	if len(best) > len(K) {
		return best, true
	}
	return nil, false
}

// greedyReexpand repeatedly adds the candidate vertex with the highest
// effective degree among the current candidate set until none remain
// viable.
func greedyReexpand(g *graph.Graph, K []int) []int {
	n := g.N()
	candidates := graph.NewBitSet(n)
	candidates.Fill(n)
	for _, v := range K {
		graph.AndInto(candidates, candidates, g.Neighbors(v))
	}

	result := append([]int(nil), K...)
	for {
		if candidates.IsEmpty() {
			return result
		}
		best, bestDeg := -1, -1
		candidates.Range(func(v int) bool {
			// Range yields ascending ids, so a strict > keeps the
			// lowest-id vertex among ties (deterministic, matching
			// the ADD/SWAP ascending-id scan convention).
			if d := effectiveDegree(g, candidates, v); d > bestDeg {
				best, bestDeg = v, d
			}
			return true
		})
		result = append(result, best)
		graph.AndInto(candidates, candidates, g.Neighbors(best))
	}
}

func cliqueSet(g *graph.Graph, K []int) graph.BitSet {
	s := graph.NewBitSet(g.N())
	for _, v := range K {
		s.Set(v)
	}
	return s
}

func adjacentToAll(g *graph.Graph, v int, K []int) bool {
	for _, u := range K {
		if !g.Adjacent(v, u) {
			return false
		}
	}
	return true
}
