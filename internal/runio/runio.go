// Package runio reads and writes exported simulation runs. A run file is
// the JSON bundle the engine emits after a completed run; loading one
// produces a validated trajectory store.
package runio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/crowdviz/internal/trajectory"
)

// RunFile is the on-disk form of a completed run: metadata plus the raw
// record handed to the trajectory store.
type RunFile struct {
	Model     string            `json:"model,omitempty"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
	Seed      int64             `json:"seed,omitempty"`
	World     trajectory.Rect   `json:"world,omitempty"`
	Record    trajectory.Record `json:"record"`
}

// Load reads a run file and builds a store from its record.
func Load(path string) (*trajectory.Store, *RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var rf RunFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, nil, fmt.Errorf("runio: %s: %w", path, err)
	}
	st, err := trajectory.New(rf.Record)
	if err != nil {
		return nil, nil, fmt.Errorf("runio: %s: %w", path, err)
	}
	return st, &rf, nil
}

// Save writes a run file as indented JSON.
func Save(path string, rf *RunFile) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(rf)
}
