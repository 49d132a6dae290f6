package comm_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-mdo/ascent/internal/comm"
)

func TestSelf(t *testing.T) {
	var c comm.Self
	assert.Equal(t, 0, c.Rank())
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 2.5, c.AllReduceSum(2.5))
}

func TestGroupRanks(t *testing.T) {
	members := comm.NewGroup(3)
	require.Len(t, members, 3)
	for i, m := range members {
		assert.Equal(t, i, m.Rank())
		assert.Equal(t, 3, m.Size())
	}
}

// Every member must observe the same global sum.
func TestGroupAllReduceSum(t *testing.T) {
	members := comm.NewGroup(4)

	results := make([]float64, len(members))
	var wg sync.WaitGroup
	for i, m := range members {
		wg.Add(1)
		go func(rank int, c comm.Comm) {
			defer wg.Done()
			results[rank] = c.AllReduceSum(float64(rank + 1))
		}(i, m)
	}
	wg.Wait()

	for rank, got := range results {
		assert.Equal(t, 10.0, got, "rank %d", rank)
	}
}

// The barrier must be reusable across successive collectives.
func TestGroupAllReduceSumRepeated(t *testing.T) {
	const rounds = 50
	members := comm.NewGroup(2)

	var wg sync.WaitGroup
	sums := make([][]float64, len(members))
	for i, m := range members {
		wg.Add(1)
		go func(rank int, c comm.Comm) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				sums[rank] = append(sums[rank], c.AllReduceSum(float64(r)))
			}
		}(i, m)
	}
	wg.Wait()

	for r := 0; r < rounds; r++ {
		want := 2 * float64(r)
		assert.Equal(t, want, sums[0][r])
		assert.Equal(t, want, sums[1][r])
	}
}

func TestNewGroupPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { comm.NewGroup(0) })
}
