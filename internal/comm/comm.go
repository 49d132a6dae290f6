// Package comm provides the process-group communicator used by distributed
// vectors.
//
// A Comm represents one member of a group of cooperating processes. The only
// collective the solver core needs is a scalar sum reduction, which backs the
// distributed inner product. Collective calls must be made by every member of
// a group in the same order; a member that skips a collective leaves the rest
// of the group blocked, exactly as with MPI.
package comm

import "sync"

// Comm is one member's handle into a group of cooperating processes.
type Comm interface {
	// Rank returns this member's index within the group, in [0, Size).
	Rank() int

	// Size returns the number of members in the group.
	Size() int

	// AllReduceSum performs a collective sum of local across all members
	// and returns the global total to every member. Every member must
	// call it; all members observe the same result.
	AllReduceSum(local float64) float64
}

// Self is the serial communicator: a group of one.
//
// It is the default for vectors that are not partitioned, and makes serial
// and distributed code paths identical.
type Self struct{}

// Rank returns 0.
func (Self) Rank() int { return 0 }

// Size returns 1.
func (Self) Size() int { return 1 }

// AllReduceSum returns local unchanged.
func (Self) AllReduceSum(local float64) float64 { return local }

// group holds the shared reduction state for an in-process group.
type group struct {
	mu      sync.Mutex
	cond    *sync.Cond
	size    int
	sum     float64
	arrived int
	gen     int
	result  float64
}

// member is one rank's handle into a group.
type member struct {
	g    *group
	rank int
}

// NewGroup creates an in-process group of n cooperating members and returns
// one Comm per rank. Each member is expected to run on its own goroutine,
// operating on its own partition of any shared vectors.
//
// The reduction barrier is reusable: members may perform any number of
// collective calls, as long as all of them perform the same sequence.
func NewGroup(n int) []Comm {
	if n < 1 {
		panic("comm: group size must be at least 1")
	}
	g := &group{size: n}
	g.cond = sync.NewCond(&g.mu)
	members := make([]Comm, n)
	for i := range members {
		members[i] = &member{g: g, rank: i}
	}
	return members
}

func (m *member) Rank() int { return m.rank }

func (m *member) Size() int { return m.g.size }

func (m *member) AllReduceSum(local float64) float64 {
	g := m.g
	g.mu.Lock()
	defer g.mu.Unlock()

	gen := g.gen
	g.sum += local
	g.arrived++
	if g.arrived == g.size {
		// Last to arrive publishes the total and releases the barrier.
		g.result = g.sum
		g.sum = 0
		g.arrived = 0
		g.gen++
		g.cond.Broadcast()
		return g.result
	}
	for gen == g.gen {
		g.cond.Wait()
	}
	return g.result
}
