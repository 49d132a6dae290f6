package solver

import "errors"

// Domain errors for solver configuration and collaborator failures.
var (
	// ErrInvalidOption indicates a solver option outside its declared
	// domain. Detected at validation time, before any solve work.
	ErrInvalidOption = errors.New("solver: option outside valid range")

	// ErrSubSolve indicates a nested subsystem solve failed at a trial
	// point.
	ErrSubSolve = errors.New("solver: subsystem solve failed")
)

// Status is the terminal outcome of one solve.
//
// Non-convergence and divergence are distinguishable so that a calling
// driver can decide whether to retry with different settings, abort, or
// accept an inexact point. Neither is reported as an error; only bad
// configuration and collaborator failures are.
type Status int

const (
	// StatusConverged means the convergence criterion was satisfied.
	StatusConverged Status = iota

	// StatusMaxIter means the iteration budget was exhausted without
	// convergence. A soft failure: the outputs vector holds the last
	// attempted trial point.
	StatusMaxIter

	// StatusDiverged means the residual norm became NaN. The loop stops
	// immediately; further arithmetic on a poisoned state cannot recover.
	StatusDiverged
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIter:
		return "max iterations reached"
	case StatusDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Converged reports whether the solve satisfied its convergence criterion.
func (s Status) Converged() bool { return s == StatusConverged }

// Result summarizes one solve: the terminal status plus the diagnostic data
// the caller needs to decide on escalation.
type Result struct {
	Status     Status
	Iterations int     // refinement steps taken (initialization not counted)
	Norm0      float64 // residual norm before the first trial step
	Norm       float64 // residual norm at exit
}

// AbsError returns the final residual norm.
func (r Result) AbsError() float64 { return r.Norm }

// RelError returns the final residual norm relative to the initial one.
// Norm0 is guaranteed nonzero by the solve loop.
func (r Result) RelError() float64 { return r.Norm / r.Norm0 }
