// Package testutil provides shared test infrastructure for the framesim engine.
// It holds golden state-table types and loaders used by sim/ tests, and has
// no dependency on sim/ so those tests can import it.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden_tables.yaml.
type GoldenDataset struct {
	Tests []GoldenTestCase `yaml:"tests"`
}

// GoldenProcess mirrors the process input record.
type GoldenProcess struct {
	ID        string `yaml:"id"`
	Size      int    `yaml:"size"`
	StartTime int    `yaml:"start_time"`
	Duration  int    `yaml:"duration"`
}

// GoldenTestCase is one reference trace: inputs plus the expected state table.
// Frames holds one row per frame, one rendered state per process in input order.
type GoldenTestCase struct {
	Name      string          `yaml:"name"`
	Strategy  string          `yaml:"strategy"` // "memory" or "cpu"
	PoolSize  int             `yaml:"pool_size,omitempty"`
	Quantum   int             `yaml:"quantum,omitempty"`
	Processes []GoldenProcess `yaml:"processes"`
	Frames    [][]string      `yaml:"frames"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_tables.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
