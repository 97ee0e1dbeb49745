package qlearning

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// snapshot is the gob wire form of a QLearning agent: the action-value
// table in row-major order plus the hyperparameters needed to resume
// or inspect it.
type snapshot struct {
	Config Config
	Values []float64
}

// GobEncode serializes the agent's action-value table and
// hyperparameters so that the agent can be checkpointed during an
// experiment. The episode cursor and random source are transient and
// are not serialized.
func (q *QLearning) GobEncode() ([]byte, error) {
	table := q.Table()
	s := snapshot{
		Config: q.config,
		Values: append([]float64(nil), table.RawMatrix().Data...),
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("gobencode: %v", err)
	}
	return buf.Bytes(), nil
}

// GobDecode restores an agent serialized with GobEncode. The decoded
// agent starts a fresh episode cursor; BeginEpisode must be called
// before it can act.
func (q *QLearning) GobDecode(data []byte) error {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("gobdecode: %v", err)
	}

	if want := s.Config.NumStates * s.Config.NumActions; len(s.Values) != want {
		return fmt.Errorf("gobdecode: table has %d values, want %d",
			len(s.Values), want)
	}

	restored, err := New(s.Config, 0)
	if err != nil {
		return fmt.Errorf("gobdecode: %v", err)
	}
	restored.Table().Copy(mat.NewDense(s.Config.NumStates,
		s.Config.NumActions, s.Values))

	*q = *restored
	return nil
}
