package recorder_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/recorder"
	"github.com/ascent-mdo/ascent/internal/solver"
)

func TestMemoryAssignsCounter(t *testing.T) {
	rec := recorder.NewMemory(comm.Self{})
	rec.Startup()

	require.NoError(t, rec.RecordIteration(recorder.Iteration{Iteration: 0, Norm: 2.0}))
	require.NoError(t, rec.RecordIteration(recorder.Iteration{Iteration: 1, Norm: 1.0}))

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Counter)
	assert.Equal(t, 2, records[1].Counter)
}

func TestMemoryStartupResets(t *testing.T) {
	rec := recorder.NewMemory(comm.Self{})
	rec.Startup()
	require.NoError(t, rec.RecordIteration(recorder.Iteration{Norm: 2.0}))

	rec.Startup()
	require.NoError(t, rec.RecordIteration(recorder.Iteration{Norm: 1.0}))

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Counter)
}

// Non-parallel recorders must not record on ranks above 0.
func TestMemoryRejectsNonZeroRank(t *testing.T) {
	members := comm.NewGroup(2)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			rec := recorder.NewMemory(members[rank])
			rec.Startup()
			errs[rank] = rec.RecordIteration(recorder.Iteration{Norm: 1.0})
		}(rank)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], recorder.ErrRankRecording)
}

func TestSolverMonitorRecords(t *testing.T) {
	rec := recorder.NewMemory(comm.Self{})
	mon := recorder.NewSolverMonitor(rec)

	mon.SolveStarted(solver.BacktrackingName)
	mon.TrialStep(1.0)
	mon.NormMeasured(0, 4.0, 4.0)
	mon.TrialStep(0.5)
	mon.NormMeasured(1, 2.0, 4.0)
	mon.SolveEnded(solver.Result{Status: solver.StatusConverged})

	require.NoError(t, mon.Err())
	records := rec.Records()
	require.Len(t, records, 2)

	assert.Equal(t, solver.BacktrackingName, records[0].Solver)
	assert.Equal(t, 0, records[0].Iteration)
	assert.Equal(t, 4.0, records[0].AbsError)
	assert.Equal(t, 1.0, records[0].RelError)
	assert.Equal(t, 1.0, records[0].Alpha)

	assert.Equal(t, 1, records[1].Iteration)
	assert.Equal(t, 2.0, records[1].AbsError)
	assert.Equal(t, 0.5, records[1].RelError)
	assert.Equal(t, 0.5, records[1].Alpha)
}

func TestChartRender(t *testing.T) {
	rec := recorder.NewMemory(comm.Self{})
	rec.Startup()
	require.NoError(t, rec.RecordIteration(recorder.Iteration{Iteration: 0, Norm: 4.0, RelError: 1.0, Alpha: 1.0}))
	require.NoError(t, rec.RecordIteration(recorder.Iteration{Iteration: 1, Norm: 2.0, RelError: 0.5, Alpha: 0.5}))

	var buf bytes.Buffer
	chart := recorder.NewChart("line search", rec)
	require.NoError(t, chart.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "line search")
	assert.Contains(t, out, "abs error")
	assert.Contains(t, out, "alpha")
}
