// Implements the ReadyQueue, which holds round-robin entries waiting for the CPU.
// Entries are enqueued on admission and on quantum expiry.

package sim

import (
	"fmt"
	"strings"
)

// RRProcess is the runtime state of an admitted process under round-robin.
type RRProcess struct {
	ID           string
	TimeLeft     int // remaining execution frames
	ArrivalFrame int // frame the process was admitted
	WaitTime     int // frames spent queued since last enqueue
}

func (p *RRProcess) String() string {
	return fmt.Sprintf("%s(left=%d,wait=%d)", p.ID, p.TimeLeft, p.WaitTime)
}

// ReadyQueue is a FIFO queue of entries waiting to run.
type ReadyQueue struct {
	queue []*RRProcess
}

// Enqueue adds an entry to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *RRProcess) {
	if p == nil {
		panic("Enqueue: entry must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the entry at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *RRProcess {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// Peek returns the entry at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *RRProcess {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of queued entries.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers may mutate the
// entries but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*RRProcess {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.String())
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
