package qlearning

import (
	"fmt"

	"github.com/golab/golab/agent"
)

// Default hyperparameters used by NewConfig
const (
	DefaultLearningRate   float64 = 0.5
	DefaultEpsilon        float64 = 0.1
	DefaultDiscountFactor float64 = 0.99
)

// Config represents a configuration for the QLearning agent.
//
// NumActions and NumStates fix the dimensions of the action-value
// table and must be positive. LearningRate is the α used in TD
// updates and is expected in (0, 1]. Epsilon is the exploration rate
// of the ε-greedy behaviour policy and is expected in [0, 1].
// DiscountFactor is the γ applied to future rewards and is expected
// in [0, 1].
type Config struct {
	NumActions     int
	NumStates      int
	LearningRate   float64
	Epsilon        float64
	DiscountFactor float64
}

// NewConfig returns a Config for an environment with the argument
// action and state space sizes, using the default hyperparameters
func NewConfig(numActions, numStates int) Config {
	return Config{
		NumActions:     numActions,
		NumStates:      numStates,
		LearningRate:   DefaultLearningRate,
		Epsilon:        DefaultEpsilon,
		DiscountFactor: DefaultDiscountFactor,
	}
}

// CreateAgent creates the agent from the Config. The agent's
// action-value table is always initialized to zero.
func (c Config) CreateAgent(seed uint64) (agent.Agent, error) {
	return New(c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid. Only the table dimensions
// are validated; out-of-range hyperparameters produce degenerate
// rather than invalid agents.
func (c Config) Validate() error {
	if c.NumActions <= 0 {
		return fmt.Errorf("config: non-positive NumActions %d: %w",
			c.NumActions, agent.ErrInvalidConfig)
	}
	if c.NumStates <= 0 {
		return fmt.Errorf("config: non-positive NumStates %d: %w",
			c.NumStates, agent.ErrInvalidConfig)
	}
	return nil
}
