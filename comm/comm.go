// Copyright 2026 Ascent MDO Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package comm exposes the process-group communicator behind distributed
// vectors: rank/size identity and the collective scalar sum that backs the
// distributed inner product.
package comm

import "github.com/ascent-mdo/ascent/internal/comm"

// Comm is one member's handle into a group of cooperating processes.
type Comm = comm.Comm

// Self is the serial communicator: a group of one.
type Self = comm.Self

// NewGroup creates an in-process group of n cooperating members and returns
// one Comm per rank.
func NewGroup(n int) []Comm {
	return comm.NewGroup(n)
}
