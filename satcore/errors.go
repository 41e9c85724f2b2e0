package satcore

import "errors"

// ErrSatError indicates the embedded DPLL solver exceeded its per-call
// decision budget. Per spec.md §7, this is recovered locally by the
// caller (SATCOL / FiltSAT): the vertex under test stays in the
// branching set B rather than being (incorrectly) pruned into P. It must
// never propagate past the failed-literal call site.
var ErrSatError = errors.New("satcore: solver exceeded its decision budget")
