// Package exact implements the CliSAT-style branch-and-bound solver: the
// fixed COLOR-SORT vertex ordering, a greedy initial clique, SATCOL,
// the Filter Phase (FiltCOL + FiltSAT), and the recursive expander that
// ties them together into Solve, the exact-solver entry point.
//
// The search is deterministic end to end: the same graph, the same
// Options, and the same (optional) warm start always produce the same
// Result and the same Stats, which is what lets an orchestrator trust
// incremental re-runs and regression tests built on fixed instances.
package exact
