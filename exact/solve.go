package exact

import (
	"errors"
	"time"

	"github.com/gocliques/clisat/graph"
	"github.com/gocliques/clisat/satcore"
)

// ErrInvalidWarmStart is returned when Options.WarmStartClique is not a
// clique in the supplied graph; Solve never silently discards an invalid
// warm start (spec.md §10, supplemented from original_source/'s
// warm-start validation).
var ErrInvalidWarmStart = errors.New("exact: warm start clique is not a clique in the graph")

// Options configures one Solve call. The zero Options behaves like
// DefaultOptions (a zero SatBudget falls back to the default budget); the
// usual pattern is to start from DefaultOptions and override only the
// fields that need to differ, mirroring the teacher's
// tsp.Options/DefaultOptions convention.
type Options struct {
	// TimeLimit bounds wall-clock search time. Zero means unbounded.
	TimeLimit time.Duration

	// SatBudget bounds DPLL decisions per failed-literal test; passed
	// straight through to satcore.Solve. Zero uses
	// satcore.DefaultDecisionBudget.
	SatBudget int

	// WarmStartClique, if non-nil, seeds the incumbent instead of
	// GreedyInitial. It must be a clique in g or Solve returns
	// ErrInvalidWarmStart.
	WarmStartClique []int

	// WarmStartLB, if positive, raises the pruning bound to at least
	// this value without supplying an actual incumbent clique — e.g. a
	// caller that knows omega(G) >= k from an external source (a prior
	// GRASP run over a related instance) but does not have a witness
	// clique in hand. It composes with WarmStartClique: the effective
	// bound is max(len(WarmStartClique), WarmStartLB), while
	// Result.Clique only ever reports a witnessed clique the search
	// actually found.
	WarmStartLB int

	// DebugChecks enables an independent, brute-force re-verification of
	// the coloring bound's soundness (spec.md §8 property 9) at every
	// recursion node whose candidate set is small enough to enumerate.
	// Intended for tests and debugging, not production solves: it adds
	// an O(2^|P|) pass per node. A violation returns
	// graph.ErrInvariantViolation and the search stops immediately.
	DebugChecks bool
}

// DefaultOptions returns the recommended configuration: no time limit,
// the default SAT decision budget, and greedy (non-warm-started)
// initialization.
func DefaultOptions() Options {
	return Options{
		SatBudget: satcore.DefaultDecisionBudget,
	}
}

// Solve runs the exact CliSAT-style branch-and-bound search to
// completion (or until Options.TimeLimit elapses) and returns the
// largest clique found together with the search's statistics.
//
// Result.IsOptimal is true only if the search exhausted the tree before
// any deadline fired; a time-limited run that is cut off returns its
// current incumbent with IsOptimal false.
func Solve(g *graph.Graph, opts Options) (graph.Result, error) {
	start := time.Now()

	satBudget := opts.SatBudget
	if satBudget <= 0 {
		satBudget = satcore.DefaultDecisionBudget
	}

	order := ColorSort(g)

	var initial []int
	if opts.WarmStartClique != nil {
		if !graph.IsClique(g, opts.WarmStartClique) {
			return graph.Result{}, ErrInvalidWarmStart
		}
		initial = append([]int(nil), opts.WarmStartClique...)
	} else {
		initial = GreedyInitial(g, order)
	}

	engine := newSearchEngine(g, order, satBudget)
	engine.bestClique = initial
	engine.bound = len(initial)
	if opts.WarmStartLB > engine.bound {
		engine.bound = opts.WarmStartLB
	}
	engine.debugChecks = opts.DebugChecks

	if opts.TimeLimit > 0 {
		engine.withDeadline(start.Add(opts.TimeLimit))
	}

	full := graph.NewBitSet(g.N())
	full.Fill(g.N())

	completed := engine.expand(nil, full)
	if engine.invariantErr != nil {
		return graph.Result{}, engine.invariantErr
	}

	stats := engine.stats
	res := graph.Result{
		Clique:    append([]int(nil), engine.bestClique...),
		Size:      len(engine.bestClique),
		Elapsed:   time.Since(start),
		IsOptimal: completed,
		Exact:     &stats,
	}
	return res, nil
}
