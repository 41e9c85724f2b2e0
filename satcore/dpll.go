package satcore

// DefaultDecisionBudget bounds the number of branching decisions the
// embedded DPLL solver makes before giving up and reporting ErrSatError.
// Failed-literal tests run at every branch-and-bound node, so the budget
// is kept small and per-call; a single slow call must never be allowed to
// dominate the outer search.
const DefaultDecisionBudget = 2000

// dpllEngine holds the mutable search state for one DPLL call, mirroring
// the dedicated-engine-struct discipline used by this module's other
// recursive search procedures (branching order, assignment trail, and a
// decision budget instead of ad-hoc closures).
type dpllEngine struct {
	cnf       *CNF
	assign    []int8 // 0=unassigned, 1=true, 2=false; 1-indexed by variable
	budget    int
	decisions int
}

// litVar returns the variable id of a literal (its absolute value).
func litVar(lit int32) int {
	if lit < 0 {
		return int(-lit)
	}
	return int(lit)
}

// litSatisfied reports whether lit is made true by the given assignment
// value (1=true, 2=false) of its variable.
func litSatisfied(lit int32, val int8) bool {
	if val == 0 {
		return false
	}
	if lit > 0 {
		return val == 1
	}
	return val == 2
}

// propagate performs unit propagation to a fixed point.
// Returns false on conflict (a clause with no satisfied or unassigned
// literal).
func (e *dpllEngine) propagate() bool {
	changed := true
	for changed {
		changed = false
		for _, cl := range e.cnf.Clauses {
			satisfied := false
			unassignedCount := 0
			var unit int32
			for _, lit := range cl {
				val := e.assign[litVar(lit)]
				if val == 0 {
					unassignedCount++
					unit = lit
					continue
				}
				if litSatisfied(lit, val) {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return false // every literal falsified: conflict
			}
			if unassignedCount == 1 {
				e.setLiteral(unit)
				changed = true
			}
		}
	}
	return true
}

// setLiteral assigns lit's variable so that lit becomes true.
func (e *dpllEngine) setLiteral(lit int32) {
	if lit > 0 {
		e.assign[lit] = 1
	} else {
		e.assign[-lit] = 2
	}
}

// nextUnassigned returns the lowest-indexed unassigned variable, or 0 if
// every variable is assigned (a satisfying assignment has been found).
func (e *dpllEngine) nextUnassigned() int {
	for v := 1; v <= e.cnf.NumVars; v++ {
		if e.assign[v] == 0 {
			return v
		}
	}
	return 0
}

// search is the DPLL recursion: propagate, then branch on the first
// unassigned variable trying true then false. Returns (satisfiable,
// aborted); aborted means the decision budget was exhausted and the
// result is indeterminate.
func (e *dpllEngine) search() (sat bool, aborted bool) {
	if !e.propagate() {
		return false, false
	}
	v := e.nextUnassigned()
	if v == 0 {
		return true, false // every variable assigned without conflict
	}

	e.decisions++
	if e.decisions > e.budget {
		return false, true
	}

	saved := make([]int8, len(e.assign))
	copy(saved, e.assign)

	e.assign[v] = 1
	if sat, aborted = e.search(); aborted {
		return false, true
	} else if sat {
		return true, false
	}
	copy(e.assign, saved)

	e.assign[v] = 2
	if sat, aborted = e.search(); aborted {
		return false, true
	} else if sat {
		return true, false
	}
	copy(e.assign, saved)

	e.assign[v] = 0
	return false, false
}

// Solve reports whether cnf is satisfiable, using a DPLL search bounded
// by budget branching decisions. budget<=0 uses DefaultDecisionBudget.
//
// Errors:
//   - ErrSatError if the decision budget is exhausted before a verdict is
//     reached; callers must treat this as "cannot prune" (sound
//     fallback), never as UNSAT.
func Solve(cnf *CNF, budget int) (bool, error) {
	if budget <= 0 {
		budget = DefaultDecisionBudget
	}
	e := &dpllEngine{
		cnf:    cnf,
		assign: make([]int8, cnf.NumVars+1),
		budget: budget,
	}
	sat, aborted := e.search()
	if aborted {
		return false, ErrSatError
	}
	return sat, nil
}
