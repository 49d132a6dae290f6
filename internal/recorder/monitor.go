package recorder

import "github.com/ascent-mdo/ascent/internal/solver"

// SolverMonitor adapts a Recorder to the solver's instrumentation
// interface, turning the event stream into Iteration records: one record per
// norm measurement, carrying the damping factor of the trial step it
// measured.
type SolverMonitor struct {
	rec    Recorder
	solver string
	alpha  float64
	err    error
}

// NewSolverMonitor wraps rec for installation via SetMonitor.
func NewSolverMonitor(rec Recorder) *SolverMonitor {
	return &SolverMonitor{rec: rec}
}

// SolveStarted resets the recorder for the new run.
func (m *SolverMonitor) SolveStarted(name string) {
	m.solver = name
	m.alpha = 0
	m.err = nil
	m.rec.Startup()
}

// TrialStep remembers the damping factor for the next measurement record.
func (m *SolverMonitor) TrialStep(alpha float64) { m.alpha = alpha }

// NormMeasured emits one iteration record.
func (m *SolverMonitor) NormMeasured(iteration int, norm, norm0 float64) {
	if m.err != nil {
		return
	}
	m.err = m.rec.RecordIteration(Iteration{
		Solver:    m.solver,
		Iteration: iteration,
		Norm:      norm,
		AbsError:  norm,
		RelError:  norm / norm0,
		Alpha:     m.alpha,
	})
}

// SolveEnded finishes the run.
func (m *SolverMonitor) SolveEnded(solver.Result) {}

// Err returns the first recording failure, if any. Recording failures never
// interrupt a solve; they are surfaced here after the fact.
func (m *SolverMonitor) Err() error { return m.err }
