// Package satcore implements the P-MAX CNF encoding and the embedded
// failed-literal SAT test used by SATCOL and the Filter Phase.
//
// The encoding: one boolean variable per vertex appearing in a coloring,
// one "at least one selected" clause per color class, and one "not both
// selected" clause for every pair of vertices with no edge in the graph
// (regardless of which classes they fall in — this is what makes a
// satisfying assignment a set of pairwise-adjacent class representatives,
// i.e. a candidate clique extension; see DESIGN.md for why the
// same-class-only reading of spec.md §4.4 would leave cross-class
// conflicts unconstrained and contradict its own stated rationale).
//
// The solver itself is a small hand-written DPLL: unit propagation plus
// chronological backtracking on the first unassigned variable, bounded
// by a per-call decision budget. No third-party SAT package exists anywhere
// in this module's reference corpus for this concern, and spec.md's own
// design notes sanction a hand-written DPLL explicitly ("the contract is
// identical"). Exceeding the budget is reported as ErrSatError, the
// sound "cannot prune" fallback — never a crash, never a false UNSAT.
package satcore
