// Package gridworld implements 2D gridworld environments over integer
// state indices
package gridworld

import (
	"fmt"

	"github.com/golab/golab/environment"
	"github.com/golab/golab/timestep"
)

// Actions available in a GridWorld
const (
	Left int = iota
	Right
	Up
	Down
)

// NumActions is the size of the action space of every GridWorld
const NumActions int = 4

// GridWorld represents a gridworld environment
//
// A gridworld is a grid of r rows and c columns. Cell (x, y) is
// enumerated as state index y*c + x, so observations are single
// integers rather than coordinates. Moving off the edge of the grid
// leaves the agent in place.
type GridWorld struct {
	environment.Task
	environment.Starter
	r, c        int
	position    int
	discount    float64
	currentStep timestep.TimeStep
}

// New creates a new gridworld with r rows and c columns, task t,
// discount factor discount, and starting state distribution s. The
// environment starts ready to use.
func New(r, c int, t environment.Task, discount float64,
	s environment.Starter) (*GridWorld, timestep.TimeStep, error) {
	if r <= 0 || c <= 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("gridworld: "+
			"non-positive dimensions (%d x %d)", r, c)
	}

	g := &GridWorld{Task: t, Starter: s, r: r, c: c, discount: discount}
	return g, g.Reset(), nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// At checks the value at position (i, j) in the gridworld. A value of
// 1.0 indicates that the agent is at position (i, j).
func (g *GridWorld) At(i, j int) float64 {
	if (i*g.c)+j == g.position {
		return 1.0
	}
	return 0.0
}

// Reset resets the environment to a starting state and returns the
// first timestep of the new episode
func (g *GridWorld) Reset() timestep.TimeStep {
	g.position = g.Start()
	g.currentStep = timestep.New(timestep.First, 0, g.discount, g.position, 0)
	return g.currentStep
}

// Step takes one environmental step given the argument action and
// returns the next timestep and whether the episode has ended
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool) {
	x, y := g.indToC(g.position)

	// Move the current position, staying in place at the walls
	switch action {
	case Left:
		if newX := x - 1; newX >= 0 {
			x = newX
		}
	case Right:
		if newX := x + 1; newX < g.c {
			x = newX
		}
	case Up:
		if newY := y + 1; newY < g.r {
			y = newY
		}
	case Down:
		if newY := y - 1; newY >= 0 {
			y = newY
		}
	}
	newPosition := g.cToInd(x, y)

	// Get information to pass back
	reward := g.GetReward(g.position, action, newPosition)
	number := g.currentStep.Number + 1
	stepType := timestep.Mid

	// Check if this transition is to the end state
	if g.AtGoal(newPosition) {
		stepType = timestep.Last
	}

	// Set up the next timestep and update the gridworld's current step
	g.position = newPosition
	step := timestep.New(stepType, reward, g.discount, newPosition, number)
	g.currentStep = step

	return step, stepType == timestep.Last
}

// NumStates returns the size of the state space
func (g *GridWorld) NumStates() int {
	return g.r * g.c
}

// NumActions returns the size of the action space
func (g *GridWorld) NumActions() int {
	return NumActions
}

// cToInd converts coordinates (x, y) to a state index
func (g *GridWorld) cToInd(x, y int) int {
	return y*g.c + x
}

// indToC converts a state index to (x, y) coordinates in the GridWorld
func (g *GridWorld) indToC(ind int) (int, int) {
	y := ind / g.c
	x := ind - (y * g.c)
	return x, y
}

func (g *GridWorld) String() string {
	str := "GridWorld | Rows: %d  |  Columns: %d  |  Position: %d"
	return fmt.Sprintf(str, g.r, g.c, g.position)
}
