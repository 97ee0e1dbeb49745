// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning learns a dense table of action values over a discrete,
// fully observable state space. Each observation the agent receives is
// an integer index that represents the complete environment state. The
// behaviour policy is ε-greedy over the table; the target policy is
// greedy, making the algorithm off-policy.
package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/golab/golab/agent"
	"github.com/golab/golab/agent/tabular/policy"
)

// QLearning implements the tabular Q-Learning algorithm. Actions and
// states are always enumerated as (0, 1, 2, ..., N-1).
//
// A QLearning agent is driven by an external training loop in the
// sequence BeginEpisode → Act → Learn → Act → Learn → ... It is not
// safe for concurrent use; parallel experiments should each own an
// independent instance.
type QLearning struct {
	behaviour *policy.EGreedy
	target    *policy.Greedy
	learner   *QLearner
	config    Config

	// Episode cursor. lastState and lastAction are only meaningful
	// while their companion flags are set: hasState is set by
	// BeginEpisode and hasAction by Act. Learn clears hasAction so
	// that two Learn calls without an intervening Act are caught.
	lastState  int
	lastAction int
	hasState   bool
	hasAction  bool

	eval bool
}

// New creates a new QLearning agent with a zero-initialized
// action-value table. The config's table dimensions must be positive;
// hyperparameters outside their documented ranges are not rejected and
// instead produce correspondingly degenerate behaviour.
func New(config Config, seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %w", err)
	}

	// The table is shared by the policies and the learner so that
	// updates made by the learner are reflected in action selection
	q := mat.NewDense(config.NumStates, config.NumActions, nil)

	behaviour := policy.NewEGreedy(q, config.Epsilon, seed)
	target := policy.NewGreedy(q)
	learner := NewQLearner(q, config.LearningRate, config.DiscountFactor)

	return &QLearning{
		behaviour: behaviour,
		target:    target,
		learner:   learner,
		config:    config,
	}, nil
}

// Seed deterministically re-seeds the agent's random source. Two
// agents seeded identically and driven with the identical sequence of
// environment interactions produce identical action sequences and
// identical final action-value tables.
func (q *QLearning) Seed(seed uint64) {
	q.behaviour.Seed(seed)
}

// BeginEpisode records the first observation of a new episode, setting
// the episode cursor. It must be called before Act or Learn in every
// fresh episode.
func (q *QLearning) BeginEpisode(observation int) error {
	if observation < 0 || observation >= q.config.NumStates {
		return fmt.Errorf("qlearning: begin episode: observation %d: %w",
			observation, agent.ErrIndexOutOfRange)
	}

	q.lastState = observation
	q.hasState = true
	q.hasAction = false
	return nil
}

// Act returns an action for the most recently observed state. In
// evaluation mode the greedy action is always returned, with ties
// broken in favour of the lowest action index. In training mode a
// random action is returned with probability ε, and the greedy action
// otherwise. The returned action is recorded for the next Learn call.
func (q *QLearning) Act() (int, error) {
	if !q.hasState {
		return 0, fmt.Errorf("qlearning: act before BeginEpisode: %w",
			agent.ErrInvalidState)
	}

	var action int
	var err error
	if q.eval {
		action, err = q.target.SelectAction(q.lastState)
	} else {
		action, err = q.behaviour.SelectAction(q.lastState)
	}
	if err != nil {
		return 0, fmt.Errorf("qlearning: act: %w", err)
	}

	q.lastAction = action
	q.hasAction = true
	return action, nil
}

// Learn updates the action-value table from the reward received after
// taking the last action in the last state and the resulting state
// index, then advances the episode cursor to the resulting state. Act
// must have been called since the last BeginEpisode or Learn.
func (q *QLearning) Learn(reward float64, observation int) error {
	if !q.hasState || !q.hasAction {
		return fmt.Errorf("qlearning: learn before Act: %w",
			agent.ErrInvalidState)
	}
	if observation < 0 || observation >= q.config.NumStates {
		return fmt.Errorf("qlearning: learn: observation %d: %w",
			observation, agent.ErrIndexOutOfRange)
	}

	q.learner.Step(q.lastState, q.lastAction, reward, observation)

	q.lastState = observation
	q.hasAction = false
	return nil
}

// Eval sets the agent into evaluation mode
func (q *QLearning) Eval() {
	q.eval = true
}

// Train sets the agent into training mode
func (q *QLearning) Train() {
	q.eval = false
}

// IsEval returns whether the agent is in evaluation mode
func (q *QLearning) IsEval() bool {
	return q.eval
}

// LastAction returns the most recently chosen action. The returned
// value is only meaningful after a call to Act.
func (q *QLearning) LastAction() int {
	return q.lastAction
}

// TdError returns the TD error the agent would compute for the
// transition (state, action) -> (reward, nextState), without updating
// the action-value table
func (q *QLearning) TdError(state, action int, reward float64,
	nextState int) float64 {
	return q.learner.TdError(state, action, reward, nextState)
}

// Table returns the agent's action-value table, with one row per
// state and one column per action. The table is owned by the agent;
// callers that persist it should copy it along with the agent's
// hyperparameters.
func (q *QLearning) Table() *mat.Dense {
	return q.learner.Table()
}

// Config returns the configuration the agent was constructed with
func (q *QLearning) Config() Config {
	return q.config
}
