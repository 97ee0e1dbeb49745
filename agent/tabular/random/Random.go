// Package random implements an agent that selects actions uniformly at
// random.
//
// The random agent is a sibling of the learning agents: it satisfies
// the same base contract but never updates any value estimates. It is
// useful as a baseline and for exercising training loops.
package random

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/golab/golab/agent"
)

// Random implements an agent whose policy is uniform over the action
// space in both training and evaluation mode. Learn validates its
// inputs but updates nothing.
type Random struct {
	numActions int
	numStates  int
	rng        *rand.Rand

	hasState bool
	eval     bool
}

// New creates a new Random agent for an environment with the argument
// action and state space sizes
func New(numActions, numStates int, seed uint64) (*Random, error) {
	if numActions <= 0 {
		return nil, fmt.Errorf("random: non-positive numActions %d: %w",
			numActions, agent.ErrInvalidConfig)
	}
	if numStates <= 0 {
		return nil, fmt.Errorf("random: non-positive numStates %d: %w",
			numStates, agent.ErrInvalidConfig)
	}

	return &Random{
		numActions: numActions,
		numStates:  numStates,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed deterministically re-seeds the agent's random source
func (r *Random) Seed(seed uint64) {
	r.rng.Seed(seed)
}

// BeginEpisode records the first observation of a new episode
func (r *Random) BeginEpisode(observation int) error {
	if observation < 0 || observation >= r.numStates {
		return fmt.Errorf("random: begin episode: observation %d: %w",
			observation, agent.ErrIndexOutOfRange)
	}
	r.hasState = true
	return nil
}

// Act returns an action sampled uniformly at random
func (r *Random) Act() (int, error) {
	if !r.hasState {
		return 0, fmt.Errorf("random: act before BeginEpisode: %w",
			agent.ErrInvalidState)
	}
	return r.rng.Intn(r.numActions), nil
}

// Learn validates the transition but performs no update
func (r *Random) Learn(reward float64, observation int) error {
	if !r.hasState {
		return fmt.Errorf("random: learn before BeginEpisode: %w",
			agent.ErrInvalidState)
	}
	if observation < 0 || observation >= r.numStates {
		return fmt.Errorf("random: learn: observation %d: %w",
			observation, agent.ErrIndexOutOfRange)
	}
	return nil
}

// Eval sets the agent into evaluation mode
func (r *Random) Eval() {
	r.eval = true
}

// Train sets the agent into training mode
func (r *Random) Train() {
	r.eval = false
}

// IsEval returns whether the agent is in evaluation mode
func (r *Random) IsEval() bool {
	return r.eval
}
