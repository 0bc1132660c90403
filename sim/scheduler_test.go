package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoundRobin(t *testing.T, quantum int, durations ...int) *RoundRobin {
	t.Helper()
	rr, err := NewRoundRobin(quantum)
	require.NoError(t, err)
	for i, d := range durations {
		rr.Admit(Process{ID: string(rune('1' + i)), Duration: d})
	}
	return rr
}

// runningID returns the process reported Running in res, or "" if the CPU is idle.
func runningID(res FrameResult) string {
	for id, s := range res.States {
		if s.Kind == KindRunning {
			return id
		}
	}
	return ""
}

func TestNewRoundRobin_NonPositiveQuantum_Rejected(t *testing.T) {
	for _, q := range []int{0, -1} {
		_, err := NewRoundRobin(q)
		assert.True(t, errors.Is(err, ErrInvalidQuantum), "quantum %d", q)
	}
}

func TestRoundRobin_Admit_DoesNotPreempt(t *testing.T) {
	// GIVEN process 1 running
	rr := newTestRoundRobin(t, 3, 5)
	rr.StepFrame()
	require.Equal(t, "1", rr.Current().ID)

	// WHEN process 2 arrives
	rr.Admit(Process{ID: "2", Duration: 2})
	res := rr.StepFrame()

	// THEN 1 keeps the CPU and 2 waits
	assert.Equal(t, Running(), res.States["1"])
	assert.Equal(t, Waiting(1), res.States["2"])
}

func TestRoundRobin_Fairness_ThreeEqualProcesses(t *testing.T) {
	// GIVEN three processes of duration 5 admitted together with R=2
	rr := newTestRoundRobin(t, 2, 5, 5, 5)

	// WHEN frames are stepped until the scheduler drains
	var order []string
	finished := map[string]int{}
	for f := 0; rr.Active() > 0; f++ {
		require.Less(t, f, 100, "scheduler did not drain")
		res := rr.StepFrame()
		if id := runningID(res); id != "" {
			order = append(order, id)
		}
		for id, s := range res.States {
			if s.Kind == KindFinished {
				finished[id] = f
			}
		}
	}

	// THEN slices alternate strictly in R-sized chunks and work equals total duration
	want := []string{"1", "1", "2", "2", "3", "3", "1", "1", "2", "2", "3", "3", "1", "2", "3"}
	assert.Equal(t, want, order)
	assert.Len(t, order, 15)
	assert.Equal(t, map[string]int{"1": 13, "2": 14, "3": 15}, finished)
}

func TestRoundRobin_WaitTime_IncreasesWhileQueued(t *testing.T) {
	// GIVEN three processes with R=2; process 3 waits for 1 and 2
	rr := newTestRoundRobin(t, 2, 5, 5, 5)

	// WHEN the first four frames run
	var waits []ProcessState
	for f := 0; f < 5; f++ {
		waits = append(waits, rr.StepFrame().States["3"])
	}

	// THEN its wait grows by one each frame until it is selected
	assert.Equal(t, []ProcessState{Waiting(1), Waiting(2), Waiting(3), Waiting(4), Running()}, waits)
}

func TestRoundRobin_QuantumExpiry_RequeuesWithResetWait(t *testing.T) {
	// GIVEN two processes and R=2
	rr := newTestRoundRobin(t, 2, 4, 4)
	rr.StepFrame()
	rr.StepFrame()

	// WHEN the quantum of process 1 runs out
	res := rr.StepFrame()

	// THEN it is requeued behind 2 with its wait restarted, keeping its remaining time
	assert.Equal(t, []string{"1"}, res.Preempted)
	assert.Equal(t, Waiting(1), res.States["1"])
	assert.Equal(t, Running(), res.States["2"])
	require.Equal(t, 1, rr.Ready().Len())
	assert.Equal(t, 2, rr.Ready().Peek().TimeLeft)
}

func TestRoundRobin_LoneProcess_QuantumExpiry_KeepsRunning(t *testing.T) {
	// GIVEN a single process longer than the quantum
	rr := newTestRoundRobin(t, 1, 3)

	// WHEN stepped
	var states []ProcessState
	for rr.Active() > 0 {
		states = append(states, rr.StepFrame().States["1"])
	}

	// THEN it is reselected immediately after each expiry and finishes after 3 units
	assert.Equal(t, []ProcessState{Running(), Running(), Running(), Finished()}, states)
}

func TestRoundRobin_FinishedProcess_OmittedAfterwards(t *testing.T) {
	rr := newTestRoundRobin(t, 2, 1, 3)
	rr.StepFrame()
	res := rr.StepFrame()
	require.Equal(t, Finished(), res.States["1"])

	res = rr.StepFrame()
	_, present := res.States["1"]
	assert.False(t, present, "finished process must not be reported again")
}

func TestRoundRobin_ZeroDuration_FinishesAfterOneFrame(t *testing.T) {
	rr := newTestRoundRobin(t, 2, 0)
	assert.Equal(t, Running(), rr.StepFrame().States["1"])
	assert.Equal(t, Finished(), rr.StepFrame().States["1"])
	assert.Equal(t, 0, rr.Active())
}

func TestRoundRobin_Idle_ReportsNothing(t *testing.T) {
	rr := newTestRoundRobin(t, 2)
	res := rr.StepFrame()
	assert.Empty(t, res.States)
	assert.Nil(t, rr.Current())
}

func TestRoundRobin_Determinism_SameInputsSameSchedule(t *testing.T) {
	run := func() []string {
		rr := newTestRoundRobin(t, 3, 4, 7, 2, 5)
		var order []string
		for rr.Active() > 0 {
			order = append(order, runningID(rr.StepFrame()))
		}
		return order
	}
	assert.Equal(t, run(), run())
}
