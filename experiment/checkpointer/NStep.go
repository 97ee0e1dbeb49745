package checkpointer

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/golab/golab/timestep"
)

// nStep implements checkpointing every N steps
type nStep struct {
	interval int
	object   Serializable // Object to save

	// filename returns the string filename of the file to save the
	// object in.
	//
	// If each serialized object should be saved in a separate file
	// with each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), use FileEnumerator, which
	// will return a function that enumerates filenames. To overwrite
	// the same file on every checkpoint, use a function that returns a
	// constant filename.
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n steps.
func NewNStep(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("nstep: non-positive interval %d", n)
	}

	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint checkpoints the Checkpointer's tracked object by
// gob-encoding it to the next filename
func (n *nStep) Checkpoint(t ts.TimeStep) error {
	if t.Number%n.interval != 0 {
		return nil
	}

	data, err := n.object.GobEncode()
	if err != nil {
		return fmt.Errorf("checkpoint: %v", err)
	}

	file, err := os.Create(n.filename())
	if err != nil {
		return fmt.Errorf("checkpoint: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("checkpoint: %v", err)
	}
	return nil
}

// FileEnumerator returns a function that generates enumerated
// filenames of the form prefix1.suffix, prefix2.suffix, ... on
// successive calls
func FileEnumerator(prefix, suffix string) func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("%s%d.%s", prefix, i, suffix)
	}
}
