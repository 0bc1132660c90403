package sim

import (
	"errors"
	"math"
)

const (
	// DefaultPoolSize is the memory pool size used by the console simulator.
	DefaultPoolSize = 256
	// DefaultQuantum is the round-robin time slice used by the console simulator.
	DefaultQuantum = 2
	// NoHorizon runs a simulation until every process has finished.
	NoHorizon = math.MaxInt
)

// ErrInvalidPoolSize is returned when a memory pool of non-positive size is requested.
var ErrInvalidPoolSize = errors.New("pool size must be positive")

// ErrProcessTooLarge is returned when a process can never fit in the pool.
var ErrProcessTooLarge = errors.New("process larger than memory pool")

// MemoryConfig groups memory strategy parameters.
type MemoryConfig struct {
	PoolSize int // total pool units (must be > 0)
	Horizon  int // max frames to run (NoHorizon = until done)
}

// SchedulerConfig groups round-robin parameters.
type SchedulerConfig struct {
	Quantum int // frames per time slice (must be >= 1)
	Horizon int // max frames to run (NoHorizon = until done)
}

// NewMemoryConfig creates a MemoryConfig with all fields explicitly set.
func NewMemoryConfig(poolSize, horizon int) MemoryConfig {
	return MemoryConfig{PoolSize: poolSize, Horizon: horizon}
}

// NewSchedulerConfig creates a SchedulerConfig with all fields explicitly set.
func NewSchedulerConfig(quantum, horizon int) SchedulerConfig {
	return SchedulerConfig{Quantum: quantum, Horizon: horizon}
}
