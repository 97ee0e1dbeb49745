package policy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/golab/golab/agent"
	"github.com/golab/golab/utils/matutils"
)

// Greedy implements a greedy policy over a tabular action-value
// function. Ties between equally valued actions are broken
// deterministically in favour of the lowest action index.
type Greedy struct {
	q *mat.Dense
}

// NewGreedy creates a new Greedy policy over the action-value table q
func NewGreedy(q *mat.Dense) *Greedy {
	return &Greedy{q}
}

// SelectAction returns the greedy action for the argument state index
func (p *Greedy) SelectAction(state int) (int, error) {
	numStates, _ := p.q.Dims()
	if state < 0 || state >= numStates {
		return 0, fmt.Errorf("selectaction: state %d: %w", state,
			agent.ErrIndexOutOfRange)
	}

	return matutils.MaxVec(p.q.RowView(state)), nil
}

// Table returns the action-value table that the policy selects
// actions from
func (p *Greedy) Table() *mat.Dense {
	return p.q
}
