// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/golab/golab/experiment/trackers"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments drive an agent through an environment, caching data from
// each TimeStep in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes until the maximum timestep limit is reached, or
// some other ending condition is reached. The RunEpisode() function
// will run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// will send each TimeStep to Trackers using the Tracker's Track()
// method. The Tracker then determines which data from the TimeStep it
// caches and saves. New Trackers can be registered with an Experiment
// through the constructor or through an Experiment's Register()
// function.
type Experiment interface {
	Run() error

	// RunEpisode returns whether or not the experiment's timestep
	// limit has been reached
	RunEpisode() (bool, error)

	// Save all tracked data to disk
	Save()

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}
