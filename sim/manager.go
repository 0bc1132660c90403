package sim

// ResourceManager is the closed set of strategies a Simulator can drive:
// *MemoryManager and *RoundRobin. The methods are unexported so no other
// package can add a variant.
type ResourceManager interface {
	// admit hands a newly eligible process to the manager.
	admit(p Process, frame int)
	// stepFrame performs one frame of work and reports the touched processes.
	stepFrame(frame int) FrameResult
	// strategy reports which variant this is.
	strategy() Strategy
}

func (rr *RoundRobin) admit(p Process, _ int) { rr.Admit(p) }
func (rr *RoundRobin) stepFrame(_ int) FrameResult { return rr.StepFrame() }
func (rr *RoundRobin) strategy() Strategy { return StrategyCPU }

func (mm *MemoryManager) admit(p Process, frame int) { mm.Admit(p, frame) }
func (mm *MemoryManager) stepFrame(frame int) FrameResult { return mm.StepFrame(frame) }
func (mm *MemoryManager) strategy() Strategy { return StrategyMemory }
