package qlearning

import (
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm. It applies the TD(0) off-policy update to an action-value
// table shared with the agent's policies:
//
//	target = reward + γ·max_a Q[nextState, a]
//	Q[state, action] += α·(target − Q[state, action])
//
// The target bootstraps from the maximum action value in the next
// state regardless of which action the behaviour policy will actually
// choose, which is what distinguishes Q-Learning from Sarsa.
type QLearner struct {
	q            *mat.Dense
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// q is the action-value table to learn
func NewQLearner(q *mat.Dense, learningRate, discount float64) *QLearner {
	return &QLearner{q, learningRate, discount}
}

// TdError returns the TD error of the transition
// (state, action) -> (reward, nextState) without modifying the
// action-value table
func (q *QLearner) TdError(state, action int, reward float64,
	nextState int) float64 {
	// Find the maximum action value in the next state
	maxVal := mat.Max(q.q.RowView(nextState))

	// Create the update target
	target := reward + q.discount*maxVal

	return target - q.q.At(state, action)
}

// Step updates the action-value table from a single transition and
// returns the TD error of the transition. Exactly one cell of the
// table is mutated.
func (q *QLearner) Step(state, action int, reward float64,
	nextState int) float64 {
	delta := q.TdError(state, action, reward, nextState)

	q.q.Set(state, action, q.q.At(state, action)+q.learningRate*delta)
	return delta
}

// Table gets and returns the action-value table of the learner
func (q *QLearner) Table() *mat.Dense {
	return q.q
}
