package grasp

import (
	"math/rand"

	"github.com/gocliques/clisat/graph"
)

// Construct runs one GRASP randomized-greedy construction (spec.md
// §4.9): at each step, the Restricted Candidate List is every viable
// vertex whose effective degree (within the current candidate set) is
// at or above a threshold interpolated between the minimum and maximum
// observed effective degree by alpha, and one RCL member is chosen
// uniformly at random.
//
// alpha in [0,1]: 0 is purely random (the threshold is the minimum, so
// the RCL is every viable vertex), 1 is purely greedy (the RCL collapses
// to the maximum-effective-degree vertices).
//
// Determinism: the same graph, alpha, and rng state always produce the
// same clique; rng must not be shared with any concurrent caller.
func Construct(g *graph.Graph, alpha float64, rng *rand.Rand) []int {
	n := g.N()
	candidates := graph.NewBitSet(n)
	candidates.Fill(n)

	var K []int

	for {
		valid := candidates
		if valid.IsEmpty() {
			return K
		}

		members := valid.Slice()
		degrees := make(map[int]int, len(members))
		dMin, dMax := -1, -1
		for _, v := range members {
			d := effectiveDegree(g, valid, v)
			degrees[v] = d
			if dMin == -1 || d < dMin {
				dMin = d
			}
			if d > dMax {
				dMax = d
			}
		}

		threshold := float64(dMin) + alpha*float64(dMax-dMin)

		rcl := make([]int, 0, len(members))
		for _, v := range members {
			if float64(degrees[v]) >= threshold {
				rcl = append(rcl, v)
			}
		}

		chosen := rcl[rng.Intn(len(rcl))]
		K = append(K, chosen)

		candidates = graph.AndInto(graph.NewBitSet(n), candidates, g.Neighbors(chosen))
	}
}

// effectiveDegree counts v's neighbors within valid, excluding v itself
// — the scoring function driving both RCL construction (here) and the
// REMOVE-ADD local-search operator (localsearch.go), following
// original_source/'s reuse of the same metric in both phases.
func effectiveDegree(g *graph.Graph, valid graph.BitSet, v int) int {
	tmp := graph.AndInto(graph.NewBitSet(g.N()), valid, g.Neighbors(v))
	return tmp.PopCount()
}
