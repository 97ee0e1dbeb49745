// Package environment outlines the interfaces and structs needed to
// implement concrete discrete environments
package environment

import (
	"github.com/golab/golab/timestep"
)

// Starter implements a distribution of starting states and samples
// starting state indices for environments
type Starter interface {
	Start() int
}

// Task implements the reward scheme for taking actions in some
// environment
type Task interface {
	// GetReward returns the reward for the transition
	// (state, action) -> nextState
	GetReward(state, action, nextState int) float64

	// AtGoal returns whether the argument state index is a goal state
	AtGoal(state int) bool
}

// Environment implements a simulated environment with a discrete,
// fully observable state space, which includes a Task to complete.
// States and actions are enumerated as (0, 1, 2, ..., N-1).
type Environment interface {
	Task
	Starter
	Reset() timestep.TimeStep // Resets between episodes
	Step(action int) (timestep.TimeStep, bool)
	NumStates() int
	NumActions() int
}
