package solver

// Monitor receives structured before/after events from a running solve.
//
// It is the explicit, opt-in replacement for ambient tracing hooks: a
// collaborator passed in at construction, never a process-wide installation.
// Implementations must be cheap; they run on the solve hot path. On
// distributed runs every rank drives its own monitor, so implementations
// that emit output should confine it to a reporting rank.
//
// Event order for one solve: SolveStarted, then for each trial point a
// TrialStep followed by a NormMeasured, then SolveEnded.
type Monitor interface {
	// SolveStarted fires once per solve, before initialization. The
	// solver argument is the strategy's stable type identifier.
	SolveStarted(solver string)

	// TrialStep fires each time a trial step is applied to the outputs
	// vector with the given damping factor.
	TrialStep(alpha float64)

	// NormMeasured fires after each residual norm measurement. Iteration
	// 0 is the post-initialization measurement. norm0 is the pre-step
	// norm the relative convergence test divides by (never zero).
	NormMeasured(iteration int, norm, norm0 float64)

	// SolveEnded fires once with the terminal result. It does not fire
	// when the solve aborts on a configuration or collaborator error.
	SolveEnded(result Result)
}

// NopMonitor discards all events. It is the default monitor.
type NopMonitor struct{}

func (NopMonitor) SolveStarted(string)                {}
func (NopMonitor) TrialStep(float64)                  {}
func (NopMonitor) NormMeasured(int, float64, float64) {}
func (NopMonitor) SolveEnded(Result)                  {}
