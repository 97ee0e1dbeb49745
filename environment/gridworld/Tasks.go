package gridworld

import (
	"fmt"
)

// Goal represents the task of reaching goal states in a GridWorld
type Goal struct {
	goals          map[int]bool // set of goal state indices
	r, c           int          // total rows and columns in environment
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal task with goals at positions
// (x[i], y[i]), given that the gridworld has r rows and c columns. The
// reward for transitions into a goal state is gr, and tr for all other
// transitions.
func NewGoal(x, y []int, r, c int, tr, gr float64) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("goal: x length (%d) != y length (%d)",
			len(x), len(y))
	}

	goals := make(map[int]bool, len(x))
	for i := range x {
		// Ensure that the goal is within the proper bounds
		if x[i] < 0 || x[i] >= c {
			return nil, fmt.Errorf("goal: x[%d] = %d out of grid with "+
				"cols = %d", i, x[i], c)
		} else if y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("goal: y[%d] = %d out of grid with "+
				"rows = %d", i, y[i], r)
		}

		goals[y[i]*c+x[i]] = true
	}

	return &Goal{goals, r, c, tr, gr}, nil
}

// GetReward returns the reward for the transition
// (state, action) -> nextState
func (g *Goal) GetReward(state, action, nextState int) float64 {
	if g.goals[nextState] {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal returns whether the argument state index is a goal state
func (g *Goal) AtGoal(state int) bool {
	return g.goals[state]
}
