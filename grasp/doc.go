// Package grasp implements the Greedy Randomized Adaptive Search
// Procedure metaheuristic for the maximum clique problem: randomized
// greedy construction via a restricted candidate list, followed by
// ADD/SWAP/REMOVE-ADD local search, repeated across Options.MaxIterations
// (or until Options.TimeLimit/Options.MaxNoImprovement fires).
//
// Unlike exact.Solve, GRASP gives up optimality for speed on instances
// too large for exhaustive branch-and-bound; Result.IsOptimal is always
// false for a grasp.Solve result.
package grasp
