// Copyright 2026 Ascent MDO Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package report exposes the reporting collaborators around the solver
// core: styled output, a rank-aware printer, and a solver summary dump.
package report

import (
	"io"

	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/report"
	"github.com/ascent-mdo/ascent/internal/solver"
)

// Styler renders classified fragments of report text.
type Styler = report.Styler

// Color is the styled implementation.
type Color = report.Color

// Plain is the no-op Styler.
type Plain = report.Plain

// Printer writes report output on exactly one rank of a group.
type Printer = report.Printer

// Field is one key/value line of a summary.
type Field = report.Field

// NewColor returns the default color scheme.
func NewColor() *Color {
	return report.NewColor()
}

// NewPrinter returns a printer that emits only on the given reporting rank.
func NewPrinter(w io.Writer, c comm.Comm, rank int) *Printer {
	return report.NewPrinter(w, c, rank)
}

// Summary writes a high-level dump of a solver's identity, configuration
// and last result.
func Summary(w io.Writer, st Styler, name string, fields []Field, res solver.Result) {
	report.Summary(w, st, name, fields, res)
}
