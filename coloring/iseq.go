package coloring

import "github.com/gocliques/clisat/graph"

// ColorClass is an ordered, pairwise non-adjacent (independent) set of
// vertices, in the order they were placed by ISEQ.
type ColorClass struct {
	Vertices []int
}

// Coloring is an ordered sequence of ColorClasses. Classes are pairwise
// disjoint; their union is a subset of the input vertex set.
type Coloring struct {
	Classes []ColorClass
}

// VertexCount returns the total number of vertices placed into any class.
func (c Coloring) VertexCount() int {
	n := 0
	for _, cls := range c.Classes {
		n += len(cls.Vertices)
	}
	return n
}

// Colored returns the union of every class as a bitset, sized for a graph
// with width n.
func (c Coloring) Colored(n int) graph.BitSet {
	b := graph.NewBitSet(n)
	for _, cls := range c.Classes {
		for _, v := range cls.Vertices {
			b.Set(v)
		}
	}
	return b
}

// colorClassBuilder tracks a growing class plus the running union of its
// members' neighborhoods, so membership tests stay O(1) bitset lookups
// instead of O(class size) adjacency scans.
type colorClassBuilder struct {
	vertices  []int
	forbidden graph.BitSet
}

// ISEQ performs incremental sequential coloring of S, producing at most
// kMax non-empty independent color classes.
//
// order is the fixed global COLOR-SORT permutation of 0..n-1 (or any
// superset ordering of S); ISEQ visits only the vertices present in S, in
// the relative order they appear in order. This determinism is part of
// ISEQ's contract (spec §4.3): the same (S, order, kMax) always yields
// byte-identical classes.
//
// Each vertex is placed in the first class where it has no neighbor
// already assigned; once kMax classes are populated, a vertex that fits
// none of them is left uncolored (not an error — callers treat the
// uncolored vertices as the ones the coloring bound cannot prune).
//
// Complexity: O(|S| * kMax) bitset membership tests plus one bitset
// union (or clone) per placement; no per-pair adjacency scanning.
func ISEQ(g *graph.Graph, order []int, S graph.BitSet, kMax int) Coloring {
	if kMax <= 0 {
		return Coloring{}
	}

	builders := make([]*colorClassBuilder, 0, kMax)
	for _, v := range order {
		if !S.Has(v) {
			continue
		}
		placed := false
		for _, cb := range builders {
			if !cb.forbidden.Has(v) {
				cb.vertices = append(cb.vertices, v)
				graph.OrInto(cb.forbidden, cb.forbidden, g.Neighbors(v))
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		if len(builders) < kMax {
			cb := &colorClassBuilder{
				vertices:  []int{v},
				forbidden: g.Neighbors(v).Clone(),
			}
			builders = append(builders, cb)
		}
		// else: left uncolored, per contract.
	}

	classes := make([]ColorClass, len(builders))
	for i, cb := range builders {
		classes[i] = ColorClass{Vertices: cb.vertices}
	}
	return Coloring{Classes: classes}
}

// IsKPartite reports whether ISEQ(g, order, S, k) colors every vertex of S
// using at most k classes — i.e. whether S is (near-)k-partite.
func IsKPartite(g *graph.Graph, order []int, S graph.BitSet, k int) (bool, Coloring) {
	col := ISEQ(g, order, S, k)
	return col.VertexCount() == S.PopCount(), col
}
