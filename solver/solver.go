// Copyright 2026 Ascent MDO Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver exposes the nonlinear solver core: the iterative solve
// state machine, the Backtracking Line Search strategy, and the
// instrumentation interface around them.
//
// Example:
//
//	ls := solver.NewBacktracking(sys, solver.DefaultBacktrackingOptions())
//	res, err := ls.Solve()
//	if err != nil {
//	    // configuration or collaborator failure
//	}
//	switch res.Status {
//	case solver.StatusConverged:
//	    // accept the point
//	case solver.StatusMaxIter:
//	    // soft failure, decide on escalation
//	case solver.StatusDiverged:
//	    // abort or retry with different settings
//	}
package solver

import "github.com/ascent-mdo/ascent/internal/solver"

// System is the solver's view of the surrounding model.
type System = solver.System

// Monitor receives structured events from a running solve.
type Monitor = solver.Monitor

// NopMonitor discards all events.
type NopMonitor = solver.NopMonitor

// Status is the terminal outcome of one solve.
type Status = solver.Status

// Terminal statuses.
const (
	StatusConverged = solver.StatusConverged
	StatusMaxIter   = solver.StatusMaxIter
	StatusDiverged  = solver.StatusDiverged
)

// Result summarizes one solve.
type Result = solver.Result

// Configuration and collaborator errors.
var (
	ErrInvalidOption = solver.ErrInvalidOption
	ErrSubSolve      = solver.ErrSubSolve
)

// Backtracking line search

// BacktrackingName is the stable strategy identifier.
const BacktrackingName = solver.BacktrackingName

// Backtracking is a backtracking line search using the Armijo-Goldstein
// sufficient-decrease condition.
type Backtracking = solver.Backtracking

// BacktrackingOptions configures a Backtracking line search.
type BacktrackingOptions = solver.BacktrackingOptions

// StepLimiter may shrink the initial step scale before the first trial.
type StepLimiter = solver.StepLimiter

// DefaultBacktrackingOptions returns the standard configuration:
// MaxIter 5, SolveSubsystems on, Rho 0.5, Alpha 1.0, RTol 0.9.
func DefaultBacktrackingOptions() BacktrackingOptions {
	return solver.DefaultBacktrackingOptions()
}

// NewBacktracking creates a backtracking line search over sys.
//
// Example:
//
//	opts := solver.DefaultBacktrackingOptions()
//	opts.Rho = 0.7
//	ls := solver.NewBacktracking(sys, opts)
func NewBacktracking(sys System, opts BacktrackingOptions) *Backtracking {
	return solver.NewBacktracking(sys, opts)
}
