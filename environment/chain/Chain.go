// Package chain implements a deterministic chain environment
//
// A chain is a row of N states. The agent starts in state 0 and can
// move left (action 0) or right (action 1). Moving left in state 0
// leaves the agent in place. A reward of 1 is given on the transition
// into the terminal state N-1 and 0 everywhere else, so the optimal
// policy is to always move right. The optimal action values are known
// in closed form, which makes the chain useful for testing learning
// algorithms.
package chain

import (
	"fmt"

	"github.com/golab/golab/timestep"
)

// Actions available in a Chain
const (
	Left int = iota
	Right
)

// MinStates is the smallest chain that has a non-terminal state
const MinStates int = 2

// GoalReward is the reward for the transition into the terminal state
const GoalReward float64 = 1.0

// Chain represents a deterministic chain environment
type Chain struct {
	numStates   int
	position    int
	discount    float64
	currentStep timestep.TimeStep
}

// New creates a new Chain with numStates states and discount factor
// discount. The environment starts ready to use.
func New(numStates int, discount float64) (*Chain, timestep.TimeStep, error) {
	if numStates < MinStates {
		return nil, timestep.TimeStep{}, fmt.Errorf("chain: need at least "+
			"%d states, got %d", MinStates, numStates)
	}

	c := &Chain{numStates: numStates, discount: discount}
	return c, c.Reset(), nil
}

// Start returns the starting state index, which is always the leftmost
// state
func (c *Chain) Start() int {
	return 0
}

// AtGoal returns whether the argument state index is the terminal
// state
func (c *Chain) AtGoal(state int) bool {
	return state == c.numStates-1
}

// GetReward returns the reward for the transition
// (state, action) -> nextState
func (c *Chain) GetReward(state, action, nextState int) float64 {
	if !c.AtGoal(state) && c.AtGoal(nextState) {
		return GoalReward
	}
	return 0.0
}

// Reset resets the environment to the starting state and returns the
// first timestep of the new episode
func (c *Chain) Reset() timestep.TimeStep {
	c.position = c.Start()
	c.currentStep = timestep.New(timestep.First, 0, c.discount, c.position, 0)
	return c.currentStep
}

// Step takes one environmental step given the argument action and
// returns the next timestep and whether the episode has ended
func (c *Chain) Step(action int) (timestep.TimeStep, bool) {
	newPosition := c.position
	switch action {
	case Left:
		if newPosition > 0 {
			newPosition--
		}
	case Right:
		if newPosition < c.numStates-1 {
			newPosition++
		}
	}

	reward := c.GetReward(c.position, action, newPosition)
	number := c.currentStep.Number + 1

	stepType := timestep.Mid
	if c.AtGoal(newPosition) {
		stepType = timestep.Last
	}

	c.position = newPosition
	c.currentStep = timestep.New(stepType, reward, c.discount, newPosition,
		number)

	return c.currentStep, stepType == timestep.Last
}

// NumStates returns the size of the state space
func (c *Chain) NumStates() int {
	return c.numStates
}

// NumActions returns the size of the action space
func (c *Chain) NumActions() int {
	return 2
}

// OptimalValue returns the optimal action value of taking the argument
// action in the argument state and acting optimally thereafter. Acting
// optimally means moving right, reaching the terminal state after
// (N-1 - state) steps; every step before the final one earns 0 reward
// and the final step earns GoalReward, so the optimal values are pure
// powers of the discount factor.
func (c *Chain) OptimalValue(state, action int) float64 {
	if c.AtGoal(state) {
		return 0.0
	}

	// Distance to the goal after taking the argument action
	var position int
	switch action {
	case Left:
		position = state
		if position > 0 {
			position--
		}
	case Right:
		position = state + 1
	}

	if c.AtGoal(position) {
		return GoalReward
	}

	remaining := c.numStates - 1 - position
	value := GoalReward
	for i := 0; i < remaining; i++ {
		value *= c.discount
	}
	return value
}
