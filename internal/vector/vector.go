// Package vector defines the distributed vector contract consumed by the
// nonlinear solvers, together with the default partitioned implementation.
//
// A vector is an ordered, fixed-size numerical array conceptually partitioned
// across cooperating processes. Each process holds one partition; reductions
// such as Dot and Norm are collective and return the same scalar on every
// process. All members of a group must agree on the global layout before any
// collective call and must issue collective calls in the same order.
package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ascent-mdo/ascent/internal/comm"
)

// Vector is the minimal contract the solver core depends on.
//
// Operating on vectors of mismatched layout is undefined behavior at this
// layer; callers must never do it. The contract deliberately performs no
// layout validation on the hot path.
type Vector interface {
	// AddScaled accumulates self += alpha * other, element-wise, in place.
	AddScaled(alpha float64, other Vector)

	// Dot returns the global inner product of self and other. Collective:
	// every cooperating process must call it with matching arguments.
	Dot(other Vector) float64

	// Norm returns the global 2-norm, sqrt(Dot(self, self)). Collective.
	Norm() float64

	// Clone returns an independent vector with identical layout and
	// values. Mutating the clone does not affect the original.
	Clone() Vector

	// SetConst fills every element with v.
	SetConst(v float64)

	// Len returns the length of the local partition.
	Len() int

	// Local returns the local partition for in-place element access.
	Local() []float64
}

// Partitioned is the default Vector implementation: a local partition plus
// the communicator joining it to the rest of the group.
type Partitioned struct {
	data []float64
	comm comm.Comm
}

// New wraps data as the local partition of a vector shared by the group c.
// The slice is referenced, not copied; the caller keeps ownership of the
// underlying storage.
func New(data []float64, c comm.Comm) *Partitioned {
	return &Partitioned{data: data, comm: c}
}

// NewLocal wraps data as a serial (single-process) vector.
func NewLocal(data []float64) *Partitioned {
	return New(data, comm.Self{})
}

// AddScaled accumulates v += alpha * other over the local partition.
func (v *Partitioned) AddScaled(alpha float64, other Vector) {
	floats.AddScaled(v.data, alpha, other.Local())
}

// Dot computes the local partial product and joins it across the group.
func (v *Partitioned) Dot(other Vector) float64 {
	local := floats.Dot(v.data, other.Local())
	return v.comm.AllReduceSum(local)
}

// Norm returns the global 2-norm. Collective.
func (v *Partitioned) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Clone returns an independent copy sharing the same communicator.
func (v *Partitioned) Clone() Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &Partitioned{data: data, comm: v.comm}
}

// SetConst fills the local partition with c.
func (v *Partitioned) SetConst(c float64) {
	for i := range v.data {
		v.data[i] = c
	}
}

// Len returns the local partition length.
func (v *Partitioned) Len() int { return len(v.data) }

// Local returns the local partition.
func (v *Partitioned) Local() []float64 { return v.data }
