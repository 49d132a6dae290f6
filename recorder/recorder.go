// Copyright 2026 Ascent MDO Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package recorder exposes per-iteration solver history capture and chart
// rendering.
package recorder

import (
	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/recorder"
)

// Iteration is one recorded solver measurement.
type Iteration = recorder.Iteration

// Recorder receives iteration records from a solve.
type Recorder = recorder.Recorder

// Memory accumulates iteration records in memory.
type Memory = recorder.Memory

// SolverMonitor adapts a Recorder to the solver's instrumentation
// interface.
type SolverMonitor = recorder.SolverMonitor

// Chart renders a recorded convergence history as an HTML page.
type Chart = recorder.Chart

// ErrRankRecording indicates a non-parallel recorder was driven on a rank
// other than 0.
var ErrRankRecording = recorder.ErrRankRecording

// NewMemory creates an in-memory recorder attached to the communicator.
func NewMemory(c comm.Comm) *Memory {
	return recorder.NewMemory(c)
}

// NewSolverMonitor wraps rec for installation via SetMonitor.
func NewSolverMonitor(rec Recorder) *SolverMonitor {
	return recorder.NewSolverMonitor(rec)
}

// NewChart builds a chart over the recorder's accumulated history.
func NewChart(title string, m *Memory) *Chart {
	return recorder.NewChart(title, m)
}
