package workload

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framesim/framesim/sim"
)

func TestGenerate_SameSeed_SameProcesses(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_RespectsRanges(t *testing.T) {
	// GIVEN a config with tight ranges
	cfg := GeneratorConfig{Seed: 3, Count: 50, MaxStart: 4, MinDuration: 2, MaxDuration: 3, MinSize: 10, MaxSize: 12, MaxPriority: 1}

	// WHEN processes are generated
	procs, err := Generate(cfg)

	// THEN every field is inside its range and IDs follow order
	require.NoError(t, err)
	require.Len(t, procs, 50)
	for i, p := range procs {
		assert.Equal(t, fmt.Sprintf("P%d", i+1), p.ID)
		assert.GreaterOrEqual(t, p.StartTime, 0)
		assert.LessOrEqual(t, p.StartTime, 4)
		assert.GreaterOrEqual(t, p.Duration, 2)
		assert.LessOrEqual(t, p.Duration, 3)
		assert.GreaterOrEqual(t, p.Size, 10)
		assert.LessOrEqual(t, p.Size, 12)
		assert.LessOrEqual(t, p.Priority, 1)
	}
	assert.NoError(t, sim.ValidateProcesses(procs, sim.StrategyMemory))
}

func TestGenerate_InvalidConfig_Rejected(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.MinSize = 0
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = DefaultGeneratorConfig()
	cfg.MaxDuration = cfg.MinDuration - 1
	_, err = Generate(cfg)
	assert.Error(t, err)
}

func TestSaveProcesses_ThenLoad_SameList(t *testing.T) {
	// GIVEN a generated list saved as YAML
	procs, err := Generate(DefaultGeneratorConfig())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "generated.yaml")
	loader := NewLoader()
	require.NoError(t, loader.SaveProcesses(context.Background(), path, procs))

	// WHEN it is loaded back for the memory strategy
	got, err := loader.LoadProcesses(context.Background(), path, sim.StrategyMemory)

	// THEN the list is unchanged
	require.NoError(t, err)
	assert.Equal(t, procs, got)
}
