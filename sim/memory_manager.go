package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// memoryEntry tracks a started process under the memory strategy.
// admitFrame is nil while the process is still waiting for a segment.
type memoryEntry struct {
	proc       Process
	admitFrame *int
}

func (e memoryEntry) allocated() bool { return e.admitFrame != nil }

// RemainingTime is one entry of the console "remaining durations" line.
type RemainingTime struct {
	ID     string
	Frames int
}

// MemoryManager drives a SegmentList for the memory strategy. It has no
// ready queue: a started process that does not fit is retried every frame.
type MemoryManager struct {
	Pool    *SegmentList
	tracked []memoryEntry
}

// NewMemoryManager creates a manager over a fresh pool of poolSize units.
func NewMemoryManager(poolSize int) *MemoryManager {
	return &MemoryManager{Pool: NewSegmentList(poolSize)}
}

// Admit starts tracking p. Allocation is attempted by the next StepFrame.
func (mm *MemoryManager) Admit(p Process, _ int) {
	mm.tracked = append(mm.tracked, memoryEntry{proc: p})
}

// Active returns the number of started processes that have not released memory.
func (mm *MemoryManager) Active() int {
	return len(mm.tracked)
}

// Pending returns the IDs of started processes still waiting for memory, in admission order.
func (mm *MemoryManager) Pending() []string {
	var ids []string
	for _, e := range mm.tracked {
		if !e.allocated() {
			ids = append(ids, e.proc.ID)
		}
	}
	return ids
}

// StepFrame walks the tracked processes in admission order and builds the
// next tracked list: pending processes retry allocation, allocated processes
// past their duration release their segment and drop out.
// A process is released once frame > admitFrame + Duration.
func (mm *MemoryManager) StepFrame(frame int) FrameResult {
	res := newFrameResult()
	next := make([]memoryEntry, 0, len(mm.tracked))
	for _, e := range mm.tracked {
		kept, released := mm.stepEntry(e, frame, &res)
		if !released {
			next = append(next, kept)
		}
	}
	mm.tracked = next
	return res
}

func (mm *MemoryManager) stepEntry(e memoryEntry, frame int, res *FrameResult) (memoryEntry, bool) {
	id := e.proc.ID
	if !e.allocated() {
		if !mm.Pool.Allocate(id, e.proc.Size) {
			res.Deferred = append(res.Deferred, id)
			return e, false
		}
		logrus.Infof("[frame %d] allocated %d units for %s", frame, e.proc.Size, id)
		admitted := frame
		res.States[id] = Running()
		res.Admitted = append(res.Admitted, id)
		return memoryEntry{proc: e.proc, admitFrame: &admitted}, false
	}
	if frame > *e.admitFrame+e.proc.Duration {
		if !mm.Pool.Free(id) {
			panic(fmt.Sprintf("memory release: %s holds no segment", id))
		}
		logrus.Infof("[frame %d] released memory of %s", frame, id)
		res.States[id] = Finished()
		res.Released = append(res.Released, id)
		return e, true
	}
	return e, false
}

// Remaining lists, for every allocated process, the frames left before its
// release as of the end of frame. Order follows admission.
func (mm *MemoryManager) Remaining(frame int) []RemainingTime {
	var out []RemainingTime
	for _, e := range mm.tracked {
		if !e.allocated() {
			continue
		}
		out = append(out, RemainingTime{ID: e.proc.ID, Frames: e.proc.Duration + 1 - (frame - *e.admitFrame)})
	}
	return out
}
