package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/golab/golab/environment"
)

// SingleStart starts every episode at the same cell
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter that always starts episodes at cell
// (x, y) in a gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (environment.Starter, error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("singlestart: x = %d out of grid with "+
			"cols = %d", x, c)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("singlestart: y = %d out of grid with "+
			"rows = %d", y, r)
	}

	return &SingleStart{y*c + x}, nil
}

// Start returns the starting state index
func (s *SingleStart) Start() int {
	return s.state
}

// UniformStart starts every episode at a cell drawn uniformly at
// random from the non-goal cells of the grid
type UniformStart struct {
	states []int
	rng    *rand.Rand
}

// NewUniformStart returns a Starter that starts episodes uniformly at
// random over the cells of an r by c gridworld with task t, excluding
// goal cells
func NewUniformStart(r, c int, t environment.Task, seed uint64) (
	environment.Starter, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("uniformstart: non-positive dimensions "+
			"(%d x %d)", r, c)
	}

	states := make([]int, 0, r*c)
	for i := 0; i < r*c; i++ {
		if !t.AtGoal(i) {
			states = append(states, i)
		}
	}
	if len(states) == 0 {
		return nil, fmt.Errorf("uniformstart: no non-goal cells to " +
			"start from")
	}

	return &UniformStart{states, rand.New(rand.NewSource(seed))}, nil
}

// Start returns a starting state index sampled uniformly at random
func (s *UniformStart) Start() int {
	return s.states[s.rng.Intn(len(s.states))]
}
