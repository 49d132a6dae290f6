// Copyright 2026 Ascent MDO Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector exposes the distributed vector contract consumed by the
// nonlinear solvers.
//
// A vector is conceptually partitioned across cooperating processes; inner
// products and norms are collective and agree on every process.
//
// Example:
//
//	u := vector.NewLocal([]float64{1.0, 2.0})
//	c := u.Clone()
//	c.SetConst(3.0)
//	total := c.Dot(u) // 9.0
package vector

import (
	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/vector"
)

// Vector is the minimal contract the solver core depends on.
type Vector = vector.Vector

// Partitioned is the default Vector implementation: a local partition plus
// a communicator.
type Partitioned = vector.Partitioned

// New wraps data as the local partition of a vector shared by the group c.
func New(data []float64, c comm.Comm) *Partitioned {
	return vector.New(data, c)
}

// NewLocal wraps data as a serial (single-process) vector.
func NewLocal(data []float64) *Partitioned {
	return vector.NewLocal(data)
}
