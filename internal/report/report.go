// Package report provides the reporting collaborators around the solver
// core: a styled-output capability, a rank-aware printer, and a solver
// summary dump.
//
// Styling is a capability chosen at construction time. Callers hold a
// Styler and never probe for color support at call time; non-color
// environments get the Plain implementation, which passes text through
// untouched.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/solver"
)

// Styler renders classified fragments of report text.
type Styler interface {
	Title(s string) string
	Good(s string) string
	Bad(s string) string
	Accent(s string) string
}

// Color is the styled implementation.
type Color struct {
	title  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	accent lipgloss.Style
}

// NewColor returns the default color scheme.
func NewColor() *Color {
	return &Color{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

func (c *Color) Title(s string) string  { return c.title.Render(s) }
func (c *Color) Good(s string) string   { return c.good.Render(s) }
func (c *Color) Bad(s string) string    { return c.bad.Render(s) }
func (c *Color) Accent(s string) string { return c.accent.Render(s) }

// Plain is the no-op Styler for non-terminal or color-disabled output.
type Plain struct{}

func (Plain) Title(s string) string  { return s }
func (Plain) Good(s string) string   { return s }
func (Plain) Bad(s string) string    { return s }
func (Plain) Accent(s string) string { return s }

// Printer writes report output on exactly one rank of a group. Every rank
// may drive the same code path; the rank check happens inside Printf, so no
// caller ever constructs a different function per rank.
type Printer struct {
	w    io.Writer
	comm comm.Comm
	rank int
}

// NewPrinter returns a printer that emits only when c's rank equals rank.
func NewPrinter(w io.Writer, c comm.Comm, rank int) *Printer {
	return &Printer{w: w, comm: c, rank: rank}
}

// Printf formats to the underlying writer on the reporting rank and
// discards the output everywhere else.
func (p *Printer) Printf(format string, args ...any) {
	if p.comm.Rank() != p.rank {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

// Field is one key/value line of a summary.
type Field struct {
	Key   string
	Value string
}

// Summary writes a high-level dump of a solver's identity, configuration
// and last result.
func Summary(w io.Writer, st Styler, name string, fields []Field, res solver.Result) {
	fmt.Fprintln(w, st.Title("==== Solver Summary ===="))
	fmt.Fprintf(w, "Solver: %s\n", st.Accent(name))
	for _, f := range fields {
		fmt.Fprintf(w, "  %-18s %s\n", f.Key+":", f.Value)
	}

	status := res.Status.String()
	if res.Status.Converged() {
		status = st.Good(status)
	} else {
		status = st.Bad(status)
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)
	fmt.Fprintf(w, "Abs error: %.6e\n", res.AbsError())
	fmt.Fprintf(w, "Rel error: %.6e\n", res.RelError())
}
