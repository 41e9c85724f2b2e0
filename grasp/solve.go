package grasp

import (
	"time"

	"github.com/gocliques/clisat/graph"
)

// Options configures one GRASP solve. The zero Options is invalid; use
// DefaultOptions and override only the fields that need to differ,
// mirroring the teacher's tsp.Options/DefaultOptions convention.
type Options struct {
	// Alpha is the RCL threshold parameter in [0,1] (see Construct): 0
	// admits every viable vertex (purely random), 1 admits only the
	// vertices of maximum effective degree (purely greedy).
	Alpha float64

	// MaxIterations bounds the number of construct+local-search cycles.
	MaxIterations int

	// TimeLimit bounds wall-clock search time. Zero means unbounded
	// (MaxIterations and MaxNoImprovement still apply).
	TimeLimit time.Duration

	// MaxNoImprovement stops the search after this many consecutive
	// iterations produce no new incumbent.
	MaxNoImprovement int

	// LocalSearchIntensity is the outer-cycle cap passed to LocalSearch.
	// Zero uses DefaultIntensity.
	LocalSearchIntensity int

	// Seed seeds the deterministic RNG. Zero uses defaultSeed.
	Seed int64
}

// DefaultOptions returns a moderate configuration suitable for instances
// too large for exact.Solve: alpha=0.3 (nearer random than greedy), 1000 iterations,
// no time limit, 200-iteration stagnation bound, and the default local
// search intensity.
func DefaultOptions() Options {
	return Options{
		Alpha:                0.3,
		MaxIterations:        1000,
		MaxNoImprovement:     200,
		LocalSearchIntensity: DefaultIntensity,
	}
}

// Solve runs the GRASP coordinator (spec.md §4.11): repeated
// construct+local-search cycles, keeping the largest clique found across
// every iteration, until MaxIterations, TimeLimit, or MaxNoImprovement
// fires. Result.IsOptimal is always false.
func Solve(g *graph.Graph, opts Options) (graph.Result, error) {
	start := time.Now()
	base := rngFromSeed(opts.Seed)

	var deadline time.Time
	hasDeadline := opts.TimeLimit > 0
	if hasDeadline {
		deadline = start.Add(opts.TimeLimit)
	}

	var best []int
	stats := graph.GraspStats{}
	noImprove := 0
	iteration := 0

	for iteration < opts.MaxIterations &&
		(!hasDeadline || time.Now().Before(deadline)) &&
		noImprove < opts.MaxNoImprovement {

		rng := deriveRNG(base, uint64(iteration))
		k0 := Construct(g, opts.Alpha, rng)
		k := LocalSearch(g, k0, opts.LocalSearchIntensity)

		stats.CliqueSizesHistory = append(stats.CliqueSizesHistory, len(k))

		if len(k) > len(best) {
			best = k
			stats.ImprovementsFound++
			stats.BestIteration = iteration
			noImprove = 0
		} else {
			noImprove++
		}

		iteration++
	}

	stats.TotalIterations = iteration

	return graph.Result{
		Clique:    append([]int(nil), best...),
		Size:      len(best),
		Elapsed:    time.Since(start),
		IsOptimal:  false,
		Iterations: iteration,
		Grasp:      &stats,
	}, nil
}
