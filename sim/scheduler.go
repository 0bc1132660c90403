package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidQuantum is returned when a round-robin quantum below 1 is requested.
var ErrInvalidQuantum = errors.New("quantum must be at least 1")

// RoundRobin is a preemptive time-slicing CPU scheduler.
// One entry runs at a time; it keeps the CPU for at most Quantum frames before
// being requeued behind every other ready entry.
type RoundRobin struct {
	Quantum   int
	ready     ReadyQueue
	current   *RRProcess
	remaining int // frames left in the current slice
	frame     int
}

// NewRoundRobin creates a scheduler with the given quantum.
func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum < 1 {
		return nil, fmt.Errorf("round-robin quantum %d: %w", quantum, ErrInvalidQuantum)
	}
	return &RoundRobin{Quantum: quantum, remaining: quantum}, nil
}

// Admit appends p to the back of the ready queue. The running entry is never preempted by an arrival.
func (rr *RoundRobin) Admit(p Process) {
	rr.ready.Enqueue(&RRProcess{
		ID:           p.ID,
		TimeLeft:     p.Duration,
		ArrivalFrame: rr.frame,
	})
}

// Current returns the running entry, or nil when the CPU is idle.
func (rr *RoundRobin) Current() *RRProcess {
	return rr.current
}

// Ready exposes the ready queue for inspection.
func (rr *RoundRobin) Ready() *ReadyQueue {
	return &rr.ready
}

// Active returns the number of entries the scheduler still holds.
func (rr *RoundRobin) Active() int {
	n := rr.ready.Len()
	if rr.current != nil {
		n++
	}
	return n
}

// StepFrame runs one frame: one unit of work for the running entry, then
// finish or preemption handling, selection, and wait accounting for the queue.
// The returned States map only names processes the scheduler still holds plus
// any that finished this frame.
func (rr *RoundRobin) StepFrame() FrameResult {
	res := newFrameResult()
	rr.remaining--

	next := rr.current
	if next != nil {
		next.TimeLeft--
		logrus.Debugf("[frame %d] %s ran, %d left", rr.frame, next.ID, next.TimeLeft)
		if next.TimeLeft <= 0 {
			res.States[next.ID] = Finished()
			res.Released = append(res.Released, next.ID)
			next = nil
		} else if rr.remaining <= 0 {
			next.WaitTime = 0
			rr.ready.Enqueue(next)
			res.Preempted = append(res.Preempted, next.ID)
			next = nil
		}
	}

	if next == nil {
		next = rr.ready.Dequeue()
		rr.remaining = rr.Quantum
		if next != nil {
			next.WaitTime = 0
			res.Admitted = append(res.Admitted, next.ID)
		}
	}
	rr.current = next

	if rr.current != nil {
		res.States[rr.current.ID] = Running()
	}
	for _, p := range rr.ready.Items() {
		p.WaitTime++
		res.States[p.ID] = Waiting(p.WaitTime)
	}

	rr.frame++
	return res
}
