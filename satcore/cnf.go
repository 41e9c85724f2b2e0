package satcore

import (
	"github.com/gocliques/clisat/coloring"
	"github.com/gocliques/clisat/graph"
)

// CNF is a formula in conjunctive normal form over one boolean variable
// per vertex that appears in the coloring it was built from.
//
// Variables are 1-indexed (0 is never a valid variable id) so a literal
// can be encoded as a signed int: +v means x_v, -v means NOT x_v.
type CNF struct {
	NumVars int
	Clauses [][]int32

	vertexOf map[int]int // variable id -> vertex id
	varOf    map[int]int // vertex id -> variable id
}

// VertexOf returns the vertex backing variable id (1-indexed).
func (c *CNF) VertexOf(variable int) int { return c.vertexOf[variable] }

// VarOf returns the variable id (1-indexed) for vertex v, and whether v
// appears in this formula at all.
func (c *CNF) VarOf(v int) (int, bool) {
	id, ok := c.varOf[v]
	return id, ok
}

// BuildPMax constructs the P-MAX CNF for coloring col over graph g:
//
//   - one variable x_v per vertex v appearing in col;
//   - for every color class, a clause OR_{v in class} x_v ("at least one
//     selected per class");
//   - for every pair (u,v) of distinct vertices appearing in col with no
//     edge in g, a clause (NOT x_u OR NOT x_v) ("can't select two
//     mutually non-adjacent vertices") — this is what makes a satisfying
//     assignment correspond to a set of pairwise-adjacent class
//     representatives, i.e. a candidate clique extension.
//
// Complexity: O(V^2) worst case over the vertices appearing in col, where
// V = col.VertexCount(); each pair test is an O(1) bitset lookup.
func BuildPMax(g *graph.Graph, col coloring.Coloring) *CNF {
	cnf := &CNF{
		vertexOf: make(map[int]int),
		varOf:    make(map[int]int),
	}

	var allVertices []int
	for _, cls := range col.Classes {
		for _, v := range cls.Vertices {
			if _, ok := cnf.varOf[v]; ok {
				continue
			}
			cnf.NumVars++
			cnf.varOf[v] = cnf.NumVars
			cnf.vertexOf[cnf.NumVars] = v
			allVertices = append(allVertices, v)
		}
	}

	for _, cls := range col.Classes {
		if len(cls.Vertices) == 0 {
			continue
		}
		clause := make([]int32, len(cls.Vertices))
		for i, v := range cls.Vertices {
			clause[i] = int32(cnf.varOf[v])
		}
		cnf.Clauses = append(cnf.Clauses, clause)
	}

	for i := 0; i < len(allVertices); i++ {
		for j := i + 1; j < len(allVertices); j++ {
			u, v := allVertices[i], allVertices[j]
			if g.Adjacent(u, v) {
				continue
			}
			cnf.Clauses = append(cnf.Clauses, []int32{
				-int32(cnf.varOf[u]), -int32(cnf.varOf[v]),
			})
		}
	}

	return cnf
}
