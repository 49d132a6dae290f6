package solver

import "github.com/ascent-mdo/ascent/internal/vector"

// System is the solver's view of the surrounding model: an opaque provider
// of the current output state, a precomputed update direction, and residual
// re-evaluation. The solver never owns the vectors it obtains here; it reads
// and mutates the outputs vector in place.
type System interface {
	// Outputs returns a mutable handle on the current output state.
	Outputs() vector.Vector

	// UpdateVector returns the named update direction (the Newton step,
	// computed before the solver runs). The empty name selects the
	// default update vector.
	UpdateVector(name string) vector.Vector

	// ResidualNorm re-evaluates the residual at the current outputs and
	// returns its norm. Collective: every cooperating process must call
	// it identically, and all observe the same value.
	ResidualNorm() float64

	// SolveSubsystems re-solves any nested subsystems at the current
	// trial point. Invoked only when the owning solver is configured to
	// do so.
	SolveSubsystems() error
}
