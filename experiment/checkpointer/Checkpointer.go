// Package checkpointer implements saving agent state during
// experiments.
//
// Agents do not persist themselves; checkpointing is the concern of
// the experiment that drives them. Anything that can gob-encode itself
// can be checkpointed, for example a tabular agent that serializes its
// action-value table and hyperparameters.
package checkpointer

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/golab/golab/timestep"
)

// Serializable is an object that can be saved/serialized
type Serializable interface {
	gob.GobEncoder
	gob.GobDecoder
}

// Checkpointer checkpoints/saves serializable objects based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}

// Load restores a Serializable from a checkpoint file written by a
// Checkpointer
func Load(filename string, object Serializable) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load: %v", err)
	}
	defer file.Close()

	var data []byte
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return fmt.Errorf("load: %v", err)
	}

	if err := object.GobDecode(data); err != nil {
		return fmt.Errorf("load: %v", err)
	}
	return nil
}
