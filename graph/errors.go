package graph

import "errors"

// Sentinel errors. Comparisons must use errors.Is; never wrap these with
// fmt.Errorf where the sentinel itself is sufficient.
var (
	// ErrInvalidGraph is returned by Build when the input is malformed:
	// a self-loop, or an edge endpoint outside [0,n). Fatal at construction,
	// never raised mid-solve.
	ErrInvalidGraph = errors.New("graph: invalid graph (self-loop or out-of-range vertex)")

	// ErrInvariantViolation indicates a debug-mode post-condition failed
	// (the exact solver's pruning-soundness check with
	// exact.Options.DebugChecks). It signals a bug
	// in the solver and must never occur over valid graphs in a release
	// build; callers that enable debug checks should treat it as fatal.
	ErrInvariantViolation = errors.New("graph: invariant violation")
)
