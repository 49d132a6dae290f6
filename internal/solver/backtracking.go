package solver

import (
	"fmt"

	"github.com/ascent-mdo/ascent/internal/vector"
)

// BacktrackingName is the stable type identifier used by reporting and
// recording collaborators.
const BacktrackingName = "NL: BK_TKG"

// Default option values for the backtracking line search.
const (
	DefaultMaxIter = 5
	DefaultRho     = 0.5
	DefaultAlpha   = 1.0
	DefaultRTol    = 0.9
	DefaultAbsTol  = 1e-10
)

// BacktrackingOptions configures a Backtracking line search. All fields are
// validated before each solve; values outside their domain are configuration
// errors and fail the solve call without touching the system.
type BacktrackingOptions struct {
	// MaxIter is the hard cap on refinement attempts. Must be positive.
	MaxIter int

	// SolveSubsystems re-solves nested subsystems at each trial point.
	// Needed for solvers nested under Newton.
	SolveSubsystems bool

	// Rho is the per-retry step-scale multiplier, in (0, 1).
	Rho float64

	// Alpha is the initial step scale. Must be positive.
	Alpha float64

	// RTol is the relative sufficient-decrease threshold: a trial point
	// is accepted once norm <= norm0 * RTol.
	RTol float64

	// AbsTol is the absolute floor on the residual norm.
	AbsTol float64
}

// DefaultBacktrackingOptions returns the standard configuration:
// MaxIter 5, SolveSubsystems on, Rho 0.5, Alpha 1.0, RTol 0.9.
func DefaultBacktrackingOptions() BacktrackingOptions {
	return BacktrackingOptions{
		MaxIter:         DefaultMaxIter,
		SolveSubsystems: true,
		Rho:             DefaultRho,
		Alpha:           DefaultAlpha,
		RTol:            DefaultRTol,
		AbsTol:          DefaultAbsTol,
	}
}

// Validate reports the first option outside its declared domain.
func (o *BacktrackingOptions) Validate() error {
	switch {
	case o.MaxIter <= 0:
		return fmt.Errorf("%w: MaxIter must be positive, got %d", ErrInvalidOption, o.MaxIter)
	case o.Rho <= 0 || o.Rho >= 1:
		return fmt.Errorf("%w: Rho must be in (0, 1), got %g", ErrInvalidOption, o.Rho)
	case o.Alpha <= 0:
		return fmt.Errorf("%w: Alpha must be positive, got %g", ErrInvalidOption, o.Alpha)
	case o.AbsTol < 0:
		return fmt.Errorf("%w: AbsTol must not be negative, got %g", ErrInvalidOption, o.AbsTol)
	}
	return nil
}

// StepLimiter may shrink the initial step scale before the first trial step
// is applied, given the outputs and update vectors. Bound-constraint
// clipping of alpha against per-variable limits plugs in here; by default no
// limiter is installed and the full configured Alpha is used.
type StepLimiter func(alpha float64, u, du vector.Vector) float64

// Backtracking is a backtracking line search using the Armijo-Goldstein
// sufficient-decrease condition.
//
// Given a full Newton update already computed by the surrounding framework,
// it finds the largest damping factor alpha in (0, Alpha] such that applying
// alpha*update sufficiently reduces the residual norm, shrinking alpha
// geometrically by Rho on each retry. The outputs vector is left at the last
// attempted trial point on every exit path.
type Backtracking struct {
	iterative
	opts       BacktrackingOptions
	limiter    StepLimiter
	updateName string

	// Per-solve state, reset on each Solve.
	alpha float64
	u, du vector.Vector
}

// NewBacktracking creates a backtracking line search over sys. Zero-valued
// numeric options are replaced by their defaults; note that a zero-valued
// BacktrackingOptions leaves SolveSubsystems off, while
// DefaultBacktrackingOptions enables it.
func NewBacktracking(sys System, opts BacktrackingOptions) *Backtracking {
	if opts.MaxIter == 0 {
		opts.MaxIter = DefaultMaxIter
	}
	if opts.Rho == 0 {
		opts.Rho = DefaultRho
	}
	if opts.Alpha == 0 {
		opts.Alpha = DefaultAlpha
	}
	if opts.RTol == 0 {
		opts.RTol = DefaultRTol
	}
	if opts.AbsTol == 0 {
		opts.AbsTol = DefaultAbsTol
	}
	return &Backtracking{
		iterative: iterative{monitor: NopMonitor{}, sys: sys},
		opts:      opts,
	}
}

// SetMonitor installs an instrumentation collaborator. Passing nil restores
// the no-op monitor.
func (b *Backtracking) SetMonitor(m Monitor) {
	if m == nil {
		m = NopMonitor{}
	}
	b.monitor = m
}

// SetStepLimiter installs an optional initial-step limiter.
func (b *Backtracking) SetStepLimiter(l StepLimiter) { b.limiter = l }

// SetUpdateName selects which named update vector to search along. The
// default is the system's default update vector (empty name).
func (b *Backtracking) SetUpdateName(name string) { b.updateName = name }

// Name returns the stable strategy identifier.
func (b *Backtracking) Name() string { return BacktrackingName }

// Options returns a read-only snapshot of the configuration.
func (b *Backtracking) Options() BacktrackingOptions { return b.opts }

// Alpha returns the damping factor of the most recent trial step.
func (b *Backtracking) Alpha() float64 { return b.alpha }

// Solve validates the configuration and runs the line search to a terminal
// outcome. Non-convergence and divergence are reported in the Result, not as
// errors; only bad configuration and collaborator failures return an error.
func (b *Backtracking) Solve() (Result, error) {
	if err := b.opts.Validate(); err != nil {
		return Result{}, err
	}
	b.maxIter = b.opts.MaxIter
	b.absTol = b.opts.AbsTol
	b.rTol = b.opts.RTol
	b.alpha = 0
	b.u = nil
	b.du = nil
	return b.solve(BacktrackingName, b)
}

// iterInitialize measures the pre-step norm, applies the initial trial step
// and measures the resulting norm.
func (b *Backtracking) iterInitialize() (float64, float64, error) {
	b.alpha = b.opts.Alpha
	b.u = b.sys.Outputs()
	b.du = b.sys.UpdateVector(b.updateName)
	if b.limiter != nil {
		b.alpha = b.limiter(b.alpha, b.u, b.du)
	}

	norm0 := b.sys.ResidualNorm()
	if norm0 == 0 {
		norm0 = 1.0
	}
	b.u.AddScaled(b.alpha, b.du)
	b.monitor.TrialStep(b.alpha)
	if err := b.subSolve(); err != nil {
		return 0, 0, err
	}
	norm := b.sys.ResidualNorm()
	return norm0, norm, nil
}

// iterExecute undoes the previous trial step, shrinks the scale and
// reapplies it.
func (b *Backtracking) iterExecute() error {
	b.u.AddScaled(-b.alpha, b.du)
	b.alpha *= b.opts.Rho
	b.u.AddScaled(b.alpha, b.du)
	b.monitor.TrialStep(b.alpha)
	return b.subSolve()
}

func (b *Backtracking) subSolve() error {
	if !b.opts.SolveSubsystems {
		return nil
	}
	if err := b.sys.SolveSubsystems(); err != nil {
		return fmt.Errorf("%w: %v", ErrSubSolve, err)
	}
	return nil
}
