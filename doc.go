// Package clisat solves the maximum clique problem: given an undirected
// graph, find the largest set of pairwise-adjacent vertices.
//
// Two solvers are provided, built on a shared bitset-based graph
// representation:
//
//	exact/ — CliSAT-style branch-and-bound: COLOR-SORT vertex ordering,
//	         ISEQ coloring, an embedded DPLL SAT core for failed-literal
//	         pruning, and a Filter Phase for near-k-partite subgraphs.
//	         Exhaustive; returns a provably optimal clique unless a
//	         time limit cuts the search short.
//	grasp/ — GRASP metaheuristic: randomized-greedy construction via a
//	         restricted candidate list, followed by ADD/SWAP/REMOVE-ADD
//	         local search. Trades optimality guarantees for speed on
//	         instances too large for exact/.
//
// Supporting packages:
//
//	graph/    — the immutable bitset Graph, Result/Stats types, and
//	            clique validation.
//	coloring/ — ISEQ and k-partiteness testing, used by exact/ and
//	            satcore/.
//	satcore/  — the P-MAX CNF encoding and embedded DPLL solver backing
//	            failed-literal reasoning.
//
// Both solvers are deterministic: the same graph, Options, and (for
// GRASP) seed always produce the same result.
package clisat
