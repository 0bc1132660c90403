package workload

import (
	"fmt"
	"strconv"

	"github.com/framesim/framesim/sim"
)

// GeneratorConfig parameterises a random process list. Ranges are inclusive.
type GeneratorConfig struct {
	Seed        int64 `yaml:"seed"`
	Count       int   `yaml:"count"`
	MaxStart    int   `yaml:"max_start"`
	MinDuration int   `yaml:"min_duration"`
	MaxDuration int   `yaml:"max_duration"`
	MinSize     int   `yaml:"min_size"`
	MaxSize     int   `yaml:"max_size"`
	MaxPriority int   `yaml:"max_priority"`
}

// DefaultGeneratorConfig returns settings that fit the default 256-unit pool.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42,
		Count:       8,
		MaxStart:    10,
		MinDuration: 1,
		MaxDuration: 8,
		MinSize:     8,
		MaxSize:     128,
		MaxPriority: 5,
	}
}

// Validate checks that every range is well formed.
func (c GeneratorConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.MaxStart < 0 {
		return fmt.Errorf("max_start must be non-negative, got %d", c.MaxStart)
	}
	if c.MinDuration < 0 || c.MaxDuration < c.MinDuration {
		return fmt.Errorf("duration range [%d, %d] is invalid", c.MinDuration, c.MaxDuration)
	}
	if c.MinSize < 1 || c.MaxSize < c.MinSize {
		return fmt.Errorf("size range [%d, %d] is invalid", c.MinSize, c.MaxSize)
	}
	if c.MaxPriority < 0 {
		return fmt.Errorf("max_priority must be non-negative, got %d", c.MaxPriority)
	}
	return nil
}

// Generate draws a process list from cfg. Each field comes from its own RNG
// subsystem so the output is reproducible per seed. IDs are "P1".."Pn".
func Generate(cfg GeneratorConfig) ([]sim.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrivals)
	demand := rng.ForSubsystem(sim.SubsystemDemand)
	durations := rng.ForSubsystem(sim.SubsystemDurations)

	procs := make([]sim.Process, cfg.Count)
	for i := range procs {
		procs[i] = sim.Process{
			ID:        "P" + strconv.Itoa(i+1),
			StartTime: arrivals.Intn(cfg.MaxStart + 1),
			Duration:  cfg.MinDuration + durations.Intn(cfg.MaxDuration-cfg.MinDuration+1),
			Size:      cfg.MinSize + demand.Intn(cfg.MaxSize-cfg.MinSize+1),
			Priority:  demand.Intn(cfg.MaxPriority + 1),
		}
	}
	return procs, nil
}
