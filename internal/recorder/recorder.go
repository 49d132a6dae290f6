// Package recorder captures per-iteration solver history and renders it.
//
// A Recorder receives one Iteration record per residual measurement. The
// Memory recorder accumulates them in process; Chart renders a recorded
// history as an HTML line chart. Recorders that are not parallel-capable
// must only record on rank 0, mirroring the convention that reporting
// happens on the reporting rank alone.
package recorder

import (
	"errors"
	"fmt"

	"github.com/ascent-mdo/ascent/internal/comm"
)

// ErrRankRecording indicates a non-parallel recorder was asked to record on
// a rank other than 0.
var ErrRankRecording = errors.New("recorder: non-parallel recorder driven on rank > 0")

// Iteration is one recorded solver measurement.
type Iteration struct {
	// Counter is the recorder-global execution counter, assigned by the
	// recorder in arrival order starting at 1.
	Counter int

	// Solver is the stable type identifier of the recording solver.
	Solver string

	// Iteration is the solver's own iteration count at measurement time;
	// 0 is the post-initialization measurement.
	Iteration int

	// Norm is the measured residual norm.
	Norm float64

	// AbsError and RelError are the absolute and relative errors at this
	// measurement.
	AbsError float64
	RelError float64

	// Alpha is the damping factor of the trial step being measured.
	Alpha float64
}

// Recorder receives iteration records from a solve.
type Recorder interface {
	// Startup prepares for a new run and resets the execution counter.
	Startup()

	// RecordIteration stores one measurement. The recorder assigns the
	// Counter field.
	RecordIteration(it Iteration) error

	// Shutdown flushes and releases any resources.
	Shutdown() error
}

// Memory accumulates iteration records in memory.
type Memory struct {
	comm     comm.Comm
	counter  int
	records  []Iteration
	parallel bool
}

// NewMemory creates an in-memory recorder attached to the given
// communicator. The recorder is not parallel-capable: it refuses to record
// on ranks other than 0.
func NewMemory(c comm.Comm) *Memory {
	return &Memory{comm: c}
}

// Startup resets the execution counter and drops prior records.
func (m *Memory) Startup() {
	m.counter = 0
	m.records = m.records[:0]
}

// RecordIteration appends one record, assigning the execution counter.
func (m *Memory) RecordIteration(it Iteration) error {
	if !m.parallel && m.comm.Rank() > 0 {
		return fmt.Errorf("%w: rank %d", ErrRankRecording, m.comm.Rank())
	}
	m.counter++
	it.Counter = m.counter
	m.records = append(m.records, it)
	return nil
}

// Shutdown is a no-op for the in-memory recorder.
func (m *Memory) Shutdown() error { return nil }

// Records returns the accumulated history in recording order.
func (m *Memory) Records() []Iteration { return m.records }
