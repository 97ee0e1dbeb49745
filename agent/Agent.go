// Package agent defines an agent interface
package agent

import "errors"

// Errors returned by agents when the caller violates the driving
// contract. Agents never retry or recover from these; they are
// surfaced synchronously and left to the caller.
var (
	// ErrInvalidState indicates that Act or Learn was called before
	// the episode cursor was established with BeginEpisode (or, for
	// Learn, before an action was chosen with Act)
	ErrInvalidState = errors.New("episode cursor not established")

	// ErrIndexOutOfRange indicates that an observation or action
	// index fell outside its declared bound
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidConfig indicates that an agent was constructed with
	// an invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which updates value estimates
// from observed transitions, and a Policy which chooses actions in
// each state. The Policy chooses which actions are taken, and the
// Learner uses the resulting transitions to improve the Policy. An
// Agent also owns its random source, which is re-seedable through the
// Seeder interface so that experiments are reproducible.
type Agent interface {
	Learner
	Policy
	Seeder
}

// Learner implements a learning algorithm that defines how value
// estimates are updated from transitions.
type Learner interface {
	// BeginEpisode records the first observation of a new episode,
	// establishing the episode cursor. It must be called before Act
	// or Learn in every episode.
	BeginEpisode(observation int) error

	// Learn updates the agent from the transition (reward, observation)
	// that resulted from the action most recently chosen by Act, and
	// advances the episode cursor to observation.
	Learn(reward float64, observation int) error
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy is either in
// training mode, where it may explore, or in evaluation mode, where
// action selection is purely greedy so that learned performance can be
// measured.
type Policy interface {
	// Act returns an action for the most recently observed state
	Act() (int, error)

	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}

// Seeder is an agent that owns a re-seedable random source. Two agents
// seeded identically and driven with the identical sequence of
// environment interactions behave identically.
type Seeder interface {
	Seed(seed uint64)
}
