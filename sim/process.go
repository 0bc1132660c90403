// Defines the Process descriptor, the static input record of every simulation.

package sim

import (
	"fmt"
)

// Strategy selects which resource manager drives a simulation.
type Strategy string

const (
	StrategyMemory Strategy = "memory"
	StrategyCPU    Strategy = "cpu"
)

// Process is an immutable input record.
//
// Size is the memory demand and is only read by the memory strategy.
// Priority is carried for display; round-robin never looks at it.
type Process struct {
	ID        string `yaml:"id" json:"id"`
	Size      int    `yaml:"size" json:"size"`
	Priority  int    `yaml:"priority" json:"priority"`
	StartTime int    `yaml:"start_time" json:"start_time"` // frame at which the process becomes eligible
	Duration  int    `yaml:"duration" json:"duration"`     // frames of occupancy once granted
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Size: %d, Priority: %d, StartTime: %d, Duration: %d)",
		p.ID, p.Size, p.Priority, p.StartTime, p.Duration)
}

// Validate checks the fields a strategy depends on.
func (p Process) Validate(strategy Strategy) error {
	if p.ID == "" {
		return fmt.Errorf("process has empty id")
	}
	if p.StartTime < 0 {
		return fmt.Errorf("process %s: start_time must be non-negative, got %d", p.ID, p.StartTime)
	}
	if p.Duration < 0 {
		return fmt.Errorf("process %s: duration must be non-negative, got %d", p.ID, p.Duration)
	}
	if strategy == StrategyMemory && p.Size <= 0 {
		return fmt.Errorf("process %s: size must be positive, got %d", p.ID, p.Size)
	}
	return nil
}

// ValidateProcesses validates every process and rejects duplicate IDs.
func ValidateProcesses(procs []Process, strategy Strategy) error {
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		if err := p.Validate(strategy); err != nil {
			return fmt.Errorf("process[%d]: %w", i, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("process[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
