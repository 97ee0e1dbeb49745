package experiment

import (
	"fmt"

	"github.com/golab/golab/agent"
	env "github.com/golab/golab/environment"
	"github.com/golab/golab/experiment/checkpointer"
	"github.com/golab/golab/experiment/trackers"
	ts "github.com/golab/golab/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// On each timestep the experiment asks the agent for an action, steps
// the environment with it, and hands the resulting reward and state
// index back to the agent to learn from, strictly in the sequence
// BeginEpisode → Act → Learn → Act → Learn → ...
type Online struct {
	environment   env.Environment
	agent         agent.Agent
	maxSteps      uint
	currentSteps  uint
	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter is a
// slice of trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		environment: e,
		agent:       a,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with the Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RegisterCheckpointer registers a checkpointer.Checkpointer with the
// Experiment so that the agent's state can be saved while the
// experiment runs
func (o *Online) RegisterCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// RunEpisode runs a single episode of the experiment and returns
// whether or not the maximum timestep limit has been reached
func (o *Online) RunEpisode() (bool, error) {
	step := o.environment.Reset()
	if err := o.agent.BeginEpisode(step.Observation); err != nil {
		return false, fmt.Errorf("runepisode: %w", err)
	}
	o.track(step)

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action, err := o.agent.Act()
		if err != nil {
			return false, fmt.Errorf("runepisode: %w", err)
		}
		step, _ = o.environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)

		// Let the agent learn from the transition
		if err := o.agent.Learn(step.Reward, step.Observation); err != nil {
			return false, fmt.Errorf("runepisode: %w", err)
		}

		if err := o.checkpoint(step); err != nil {
			return false, fmt.Errorf("runepisode: %w", err)
		}
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	ended := false

	for !ended {
		var err error
		ended, err = o.RunEpisode()
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each
// tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// checkpoint saves the current state of the agent using each
// registered checkpointer
func (o *Online) checkpoint(t ts.TimeStep) error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(t); err != nil {
			return err
		}
	}
	return nil
}
