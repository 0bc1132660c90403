package sim

import (
	"fmt"
	"io"
)

// ProcessMetrics summarises one process's path through the state table.
// Frame fields are -1 when the event never happened.
type ProcessMetrics struct {
	ID            string
	StartTime     int
	FirstRunFrame int // first frame reported Running
	FinishFrame   int // first frame reported Finished
	WaitFrames    int // frames reported Waiting
	Response      int // FirstRunFrame - StartTime
	Turnaround    int // FinishFrame - StartTime
}

// Metrics aggregates per-process metrics for a whole run.
type Metrics struct {
	Frames        int // number of frames executed
	Completed     int
	Processes     []ProcessMetrics
	AvgWait       float64
	AvgResponse   float64
	AvgTurnaround float64
}

// ComputeMetrics derives metrics from a state table whose columns follow procs.
func ComputeMetrics(procs []Process, table [][]ProcessState) *Metrics {
	m := &Metrics{Frames: len(table), Processes: make([]ProcessMetrics, len(procs))}
	for i, p := range procs {
		pm := ProcessMetrics{ID: p.ID, StartTime: p.StartTime, FirstRunFrame: -1, FinishFrame: -1, Response: -1, Turnaround: -1}
		for f, row := range table {
			switch row[i].Kind {
			case KindWaiting:
				pm.WaitFrames++
			case KindRunning:
				if pm.FirstRunFrame < 0 {
					pm.FirstRunFrame = f
					pm.Response = f - p.StartTime
				}
			case KindFinished:
				if pm.FinishFrame < 0 {
					pm.FinishFrame = f
					pm.Turnaround = f - p.StartTime
				}
			}
		}
		m.Processes[i] = pm
	}

	var wait, response, turnaround int
	for _, pm := range m.Processes {
		if pm.FinishFrame < 0 {
			continue
		}
		m.Completed++
		wait += pm.WaitFrames
		response += pm.Response
		turnaround += pm.Turnaround
	}
	if m.Completed > 0 {
		m.AvgWait = float64(wait) / float64(m.Completed)
		m.AvgResponse = float64(response) / float64(m.Completed)
		m.AvgTurnaround = float64(turnaround) / float64(m.Completed)
	}
	return m
}

// Print writes a human-readable summary to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Frames               : %d\n", m.Frames)
	fmt.Fprintf(w, "Completed Processes  : %d/%d\n", m.Completed, len(m.Processes))
	if m.Completed > 0 {
		fmt.Fprintf(w, "Average Wait         : %.2f frames\n", m.AvgWait)
		fmt.Fprintf(w, "Average Response     : %.2f frames\n", m.AvgResponse)
		fmt.Fprintf(w, "Average Turnaround   : %.2f frames\n", m.AvgTurnaround)
	}
}
