package graph

// Graph is an immutable undirected simple graph over dense vertex ids
// 0..N()-1. Adjacency is stored as one BitSet row per vertex; degree is
// precomputed at construction.
//
// Contract:
//   - Symmetric: u in adj(v) iff v in adj(u).
//   - No self-loops: v is never in adj(v).
//   - Immutable for the lifetime of a solve (§5 concurrency model);
//     safe to share read-only across goroutines without locking.
type Graph struct {
	n       int
	adj     []BitSet
	degree  []int
}

// Build constructs a Graph over n vertices (0..n-1) from an edge list.
// Edges are taken as unordered pairs; duplicates are harmless (idempotent).
//
// Errors:
//   - ErrInvalidGraph if n < 0, any endpoint is outside [0,n), or u==v.
//
// Complexity: O(n^2/64 + E) time and O(n^2/64) space for the adjacency
// bitsets.
func Build(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrInvalidGraph
	}
	g := &Graph{
		n:      n,
		adj:    make([]BitSet, n),
		degree: make([]int, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = NewBitSet(n)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrInvalidGraph
		}
		if u == v {
			return nil, ErrInvalidGraph
		}
		if !g.adj[u].Has(v) {
			g.adj[u].Set(v)
			g.adj[v].Set(u)
		}
	}
	for v := 0; v < n; v++ {
		g.degree[v] = g.adj[v].PopCount()
	}
	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Adjacent reports whether u and v are connected. O(1).
func (g *Graph) Adjacent(u, v int) bool { return g.adj[u].Has(v) }

// Neighbors returns the adjacency bitset of v. Callers must not mutate the
// returned BitSet; it is shared, owned by the Graph.
func (g *Graph) Neighbors(v int) BitSet { return g.adj[v] }

// Degree returns the precomputed degree of v. O(1).
func (g *Graph) Degree(v int) int { return g.degree[v] }

// Induced intersects S with the neighbors of v, writing into dst and
// returning it; it performs no allocation when dst is reused across
// calls.
func (g *Graph) Induced(dst, S BitSet, v int) BitSet {
	return AndInto(dst, S, g.adj[v])
}
