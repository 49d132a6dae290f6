// Package solver implements the iterative nonlinear solver core: the generic
// iterate-until-converged state machine and the Backtracking Line Search
// strategy built on it.
//
// A solver drives a System (an opaque residual/update provider) toward zero
// residual norm. The base loop owns convergence testing, iteration
// bookkeeping and outcome reporting; a strategy defines what "the initial
// measurement" and "one corrective step" mean.
//
// Example usage:
//
//	ls := solver.NewBacktracking(sys, solver.DefaultBacktrackingOptions())
//	res, err := ls.Solve()
//	if err != nil {
//	    // bad configuration or a collaborator failure
//	}
//	if !res.Status.Converged() {
//	    // soft failure: decide whether to retry, escalate, or accept
//	}
package solver

import "math"

// strategy is what a concrete solver plugs into the base loop.
type strategy interface {
	// iterInitialize runs once per solve and returns the residual norm
	// before and after the first corrective action.
	iterInitialize() (norm0, norm float64, err error)

	// iterExecute applies one corrective step to the outputs vector.
	// The base loop re-measures the norm afterwards.
	iterExecute() error
}

// iterative is the generic solve loop shared by all nonlinear solvers.
//
// State machine: IDLE -> INITIALIZED -> ITERATING -> terminal. Per-solve
// state lives in the Result under construction and is discarded between
// solves.
type iterative struct {
	sys     System
	monitor Monitor

	maxIter int
	absTol  float64
	rTol    float64
}

func (s *iterative) solve(name string, strat strategy) (Result, error) {
	s.monitor.SolveStarted(name)
	norm0, norm, err := strat.iterInitialize()
	if err != nil {
		return Result{}, err
	}
	// Guard against a zero denominator in relative tests.
	if norm0 == 0 {
		norm0 = 1.0
	}
	s.monitor.NormMeasured(0, norm, norm0)

	res := Result{Norm0: norm0, Norm: norm}
	for res.Iterations < s.maxIter && !s.converged(norm0, norm) && !math.IsNaN(norm) {
		if err := strat.iterExecute(); err != nil {
			return Result{}, err
		}
		norm = s.sys.ResidualNorm()
		res.Iterations++
		res.Norm = norm
		s.monitor.NormMeasured(res.Iterations, norm, norm0)
	}

	switch {
	case math.IsNaN(norm):
		res.Status = StatusDiverged
	case s.converged(norm0, norm):
		res.Status = StatusConverged
	default:
		// Budget exhausted. Soft failure; the caller decides whether
		// to escalate. Outputs hold the last attempted trial point.
		res.Status = StatusMaxIter
	}
	s.monitor.SolveEnded(res)
	return res, nil
}

func (s *iterative) converged(norm0, norm float64) bool {
	return norm <= s.absTol || norm <= norm0*s.rTol
}
