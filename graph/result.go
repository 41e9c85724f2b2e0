package graph

import "time"

// Result is the typed record every solver in this module returns to its
// caller. Orchestrators decide what to do with it (report, persist,
// compare against a benchmark catalog); the core never formats or
// prints one.
type Result struct {
	// Clique is the best clique found, as vertex ids into the Graph it
	// was computed over.
	Clique []int

	// Size is len(Clique); kept as a separate field because it is read
	// far more often than Clique itself (incumbent comparisons, logging
	// by the orchestrator, etc).
	Size int

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration

	// IsOptimal is true iff the exact solver completed its search
	// without hitting the time budget. Always false for GRASP.
	IsOptimal bool

	// Iterations is the number of GRASP construct+local-search cycles
	// performed; zero (unused) for the exact solver.
	Iterations int

	// Exact holds the exact solver's node/bound counters; nil for a
	// GRASP result.
	Exact *ExactStats

	// Grasp holds the GRASP solver's iteration/improvement counters; nil
	// for an exact-solver result.
	Grasp *GraspStats
}

// ExactStats accumulates counters owned exclusively by the exact solver
// across one solve. Every field is non-decreasing.
type ExactStats struct {
	NodesExplored int
	SatCalls      int
	PrunedByBound int
	FilterCalls   int
	SatcolCalls   int
}

// GraspStats accumulates counters owned exclusively by a GRASP solve.
// CliqueSizesHistory and ImprovementsFound supplement spec.md with the
// bookkeeping the original Python implementation kept
// (GRASPStatistics.clique_sizes_history / improvements_found); they are
// typed fields, not a logging side-channel.
type GraspStats struct {
	TotalIterations    int
	ImprovementsFound  int
	BestIteration      int
	CliqueSizesHistory []int
}
