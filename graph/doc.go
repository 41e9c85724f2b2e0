// Package graph is the shared, read-only graph representation consumed by
// every maximum-clique solver in this module.
//
// Vertices are dense integers 0..n-1. Adjacency is stored as a bitset per
// vertex (a flat []uint64 word buffer), giving O(1) edge tests and
// cache-friendly set-intersection loops — the same discipline the rest of
// this codebase applies to dense numeric buffers, here applied to bits
// instead of weights.
//
// A Graph is immutable once built: there is no AddEdge/RemoveVertex here.
// Every solve treats it as shared read-only state; concurrent solves over
// the same Graph are safe by construction, no locking required.
package graph
