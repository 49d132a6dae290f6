package vector_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-mdo/ascent/internal/comm"
	"github.com/ascent-mdo/ascent/internal/vector"
)

func TestAddScaled(t *testing.T) {
	u := vector.NewLocal([]float64{1.0, 2.0, 3.0})
	du := vector.NewLocal([]float64{10.0, 20.0, 30.0})

	u.AddScaled(0.5, du)

	assert.Equal(t, []float64{6.0, 12.0, 18.0}, u.Local())
}

// Undoing and reapplying a trial step with the same scale must restore the
// vector, within floating-point tolerance.
func TestAddScaledUndoReapply(t *testing.T) {
	u := vector.NewLocal([]float64{1.0, -2.0, 0.25})
	du := vector.NewLocal([]float64{0.3, 0.7, -1.1})
	orig := u.Clone()

	const alpha = 0.625
	u.AddScaled(alpha, du)
	u.AddScaled(-alpha, du)

	for i, want := range orig.Local() {
		assert.InDelta(t, want, u.Local()[i], 1e-14)
	}
}

// Dot of a constant-filled clone against the original obeys
// clone(v).SetConst(c).Dot(v) == c * sum(v).
func TestDotConstClone(t *testing.T) {
	v := vector.NewLocal([]float64{1.0, 2.0})

	filled := v.Clone()
	filled.SetConst(3.0)

	assert.Equal(t, 9.0, filled.Dot(v))
	assert.Equal(t, 18.0, filled.Dot(filled))
}

func TestCloneIndependence(t *testing.T) {
	v := vector.NewLocal([]float64{1.0, 2.0})
	c := v.Clone()
	c.SetConst(7.0)

	assert.Equal(t, []float64{1.0, 2.0}, v.Local())
	assert.Equal(t, []float64{7.0, 7.0}, c.Local())
}

func TestNorm(t *testing.T) {
	v := vector.NewLocal([]float64{3.0, 4.0})
	assert.InDelta(t, 5.0, v.Norm(), 1e-15)

	v.SetConst(0)
	assert.Equal(t, 0.0, v.Norm())
}

// A vector partitioned over two ranks must reduce to the same dot product
// and norm as its serial equivalent, and every rank must see the same value.
func TestPartitionedDotMatchesSerial(t *testing.T) {
	serial := vector.NewLocal([]float64{1.0, 2.0, 3.0, 4.0})
	want := serial.Dot(serial)
	require.Equal(t, 30.0, want)

	members := comm.NewGroup(2)
	parts := [][]float64{{1.0, 2.0}, {3.0, 4.0}}

	dots := make([]float64, 2)
	norms := make([]float64, 2)
	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			v := vector.New(parts[rank], members[rank])
			dots[rank] = v.Dot(v)
			norms[rank] = v.Norm()
		}(rank)
	}
	wg.Wait()

	for rank := 0; rank < 2; rank++ {
		assert.Equal(t, want, dots[rank], "rank %d", rank)
		assert.InDelta(t, math.Sqrt(want), norms[rank], 1e-15, "rank %d", rank)
	}
}

// The clone/SetConst/Dot law holds under partitioning too.
func TestPartitionedDotConstClone(t *testing.T) {
	members := comm.NewGroup(2)
	parts := [][]float64{{1.0}, {2.0}}

	dots := make([]float64, 2)
	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			v := vector.New(parts[rank], members[rank])
			filled := v.Clone()
			filled.SetConst(3.0)
			dots[rank] = filled.Dot(v)
		}(rank)
	}
	wg.Wait()

	assert.Equal(t, 9.0, dots[0])
	assert.Equal(t, 9.0, dots[1])
}
