// Package sim provides the frame-stepped simulation engine for framesim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: the immutable Process input record
//   - state.go: ProcessState and the per-frame FrameResult
//   - simulator.go: the frame loop and state-row derivation
//
// # Resource managers
//
// A Simulator drives exactly one ResourceManager, a closed set of two:
//   - MemoryManager (memory_manager.go) over a best-fit SegmentList (memory.go)
//   - RoundRobin (scheduler.go) over a FIFO ReadyQueue (queue.go)
//
// The two strategies are never combined in one simulation.
//
// Sub-packages:
//   - sim/trace/: admission, release and preemption records
//   - sim/workload/: process list loading
package sim
