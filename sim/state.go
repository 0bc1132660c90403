package sim

import "fmt"

// StateKind enumerates the lifecycle positions a process can occupy in a frame.
type StateKind int

const (
	KindNotYetStarted StateKind = iota
	KindWaiting
	KindRunning
	KindFinished
)

// ProcessState is the visible state of one process in one frame.
// Wait is only meaningful for KindWaiting and counts frames spent in the ready queue.
type ProcessState struct {
	Kind StateKind
	Wait int
}

func NotYetStarted() ProcessState { return ProcessState{Kind: KindNotYetStarted} }
func Running() ProcessState       { return ProcessState{Kind: KindRunning} }
func Finished() ProcessState      { return ProcessState{Kind: KindFinished} }

// Waiting returns a waiting state that has accrued n frames in the ready queue.
func Waiting(n int) ProcessState { return ProcessState{Kind: KindWaiting, Wait: n} }

func (s ProcessState) String() string {
	switch s.Kind {
	case KindWaiting:
		return fmt.Sprintf("waiting(%d)", s.Wait)
	case KindRunning:
		return "running"
	case KindFinished:
		return "finished"
	default:
		return "-"
	}
}

// MarshalYAML renders the state in its String form so state tables stay readable.
func (s ProcessState) MarshalYAML() (any, error) {
	return s.String(), nil
}

// FrameResult is what a resource manager reports for a single frame.
// States only carries processes the manager touched this frame; everything
// else keeps its previous state (see NextRow).
type FrameResult struct {
	States    map[string]ProcessState
	Admitted  []string // processes granted the resource this frame
	Deferred  []string // processes that asked and were told to retry
	Preempted []string // processes requeued on quantum expiry
	Released  []string // processes that returned their resource
}

func newFrameResult() FrameResult {
	return FrameResult{States: make(map[string]ProcessState)}
}
