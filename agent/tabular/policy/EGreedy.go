// Package policy implements policies over a tabular action-value
// function
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/golab/golab/agent"
	"github.com/golab/golab/utils/floatutils"
	"github.com/golab/golab/utils/matutils"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// function. The table q has one row per state and one column per
// action and is shared with the learner that updates it.
//
// Epsilon values outside [0, 1] are clipped into that range rather
// than rejected, so degenerate hyperparameters degrade gracefully.
type EGreedy struct {
	q       *mat.Dense
	epsilon float64
	rng     rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy over the action-value
// table q, where e=epsilon is the probability with which a random
// action is selected
func NewEGreedy(q *mat.Dense, e float64, seed uint64) *EGreedy {
	source := rand.NewSource(seed)
	epsilon := floatutils.Clip(e, 0.0, 1.0)

	return &EGreedy{q, epsilon, source}
}

// SelectAction selects an action from an ε-greedy policy for the
// argument state index
func (p *EGreedy) SelectAction(state int) (int, error) {
	numStates, numActions := p.q.Dims()
	if state < 0 || state >= numStates {
		return 0, fmt.Errorf("selectaction: state %d: %w", state,
			agent.ErrIndexOutOfRange)
	}

	// Find the greedy action for the state
	actionValues := p.q.RowView(state)
	greedyAction := matutils.MaxVec(actionValues)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	actionProbabilites := make([]float64, numActions)
	for i := 0; i < numActions; i++ {
		actionProbabilites[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilites[greedyAction] += (1.0 - p.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities and sample from it
	dist := distuv.NewCategorical(actionProbabilites, p.rng)
	return int(dist.Rand()), nil
}

// Seed deterministically re-seeds the policy's random source
func (p *EGreedy) Seed(seed uint64) {
	p.rng.Seed(seed)
}

// Epsilon returns the policy's exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Table returns the action-value table that the policy selects
// actions from
func (p *EGreedy) Table() *mat.Dense {
	return p.q
}
