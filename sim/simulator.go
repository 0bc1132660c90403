// sim/simulator.go
package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	simtrace "github.com/framesim/framesim/sim/trace"
)

const tracerName = "github.com/framesim/framesim/sim"

// Simulator is the frame-stepped driver. It owns the process list, one
// resource manager and the append-only state table.
type Simulator struct {
	RunID   string
	Frame   int // next frame to execute
	Horizon int // max frames; the loop stops here even if processes remain
	// Processes in input order; column i of every state row belongs to Processes[i].
	Processes []Process
	Manager   ResourceManager
	Trace     *simtrace.SimulationTrace
	table     [][]ProcessState
	log       *logrus.Entry
}

// NewMemorySimulator builds a simulator driving a best-fit memory pool.
func NewMemorySimulator(procs []Process, cfg MemoryConfig) (*Simulator, error) {
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("memory simulator: pool size %d: %w", cfg.PoolSize, ErrInvalidPoolSize)
	}
	if err := ValidateProcesses(procs, StrategyMemory); err != nil {
		return nil, fmt.Errorf("memory simulator: %w", err)
	}
	for _, p := range procs {
		if p.Size > cfg.PoolSize {
			return nil, fmt.Errorf("memory simulator: process %s needs %d of %d units: %w",
				p.ID, p.Size, cfg.PoolSize, ErrProcessTooLarge)
		}
	}
	return newSimulator(procs, NewMemoryManager(cfg.PoolSize), cfg.Horizon), nil
}

// NewCPUSimulator builds a simulator driving a round-robin scheduler.
func NewCPUSimulator(procs []Process, cfg SchedulerConfig) (*Simulator, error) {
	rr, err := NewRoundRobin(cfg.Quantum)
	if err != nil {
		return nil, fmt.Errorf("cpu simulator: %w", err)
	}
	if err := ValidateProcesses(procs, StrategyCPU); err != nil {
		return nil, fmt.Errorf("cpu simulator: %w", err)
	}
	return newSimulator(procs, rr, cfg.Horizon), nil
}

func newSimulator(procs []Process, m ResourceManager, horizon int) *Simulator {
	if horizon <= 0 {
		horizon = NoHorizon
	}
	runID := uuid.New().String()
	ps := make([]Process, len(procs))
	copy(ps, procs)
	return &Simulator{
		RunID:     runID,
		Horizon:   horizon,
		Processes: ps,
		Manager:   m,
		Trace:     simtrace.NewSimulationTrace(),
		log: logrus.WithFields(logrus.Fields{
			"run":      runID,
			"strategy": string(m.strategy()),
		}),
	}
}

// Strategy reports which resource manager this simulator drives.
func (sim *Simulator) Strategy() Strategy {
	return sim.Manager.strategy()
}

// LastRow returns the most recent state row, or an all-NotYetStarted row before the first frame.
func (sim *Simulator) LastRow() []ProcessState {
	if len(sim.table) == 0 {
		return make([]ProcessState, len(sim.Processes))
	}
	return sim.table[len(sim.table)-1]
}

// StateTable returns the per-frame state rows. Row f is frame f; the slice is
// the simulator's own storage and must not be modified.
func (sim *Simulator) StateTable() [][]ProcessState {
	return sim.table
}

// Done reports whether every process has finished.
func (sim *Simulator) Done() bool {
	for _, s := range sim.LastRow() {
		if s.Kind != KindFinished {
			return false
		}
	}
	return true
}

// NextRow derives a state row by overlaying this frame's results onto the
// previous row. Processes absent from results keep their previous state.
func NextRow(prev []ProcessState, procs []Process, results map[string]ProcessState) []ProcessState {
	row := make([]ProcessState, len(procs))
	for i, p := range procs {
		if s, ok := results[p.ID]; ok {
			row[i] = s
			continue
		}
		if i < len(prev) {
			row[i] = prev[i]
		} else {
			row[i] = NotYetStarted()
		}
	}
	return row
}

// RunFrame executes one complete frame: admit arrivals, step the manager,
// derive and append the state row, advance the clock.
func (sim *Simulator) RunFrame() FrameResult {
	frame := sim.Frame
	for _, p := range sim.Processes {
		if p.StartTime == frame {
			sim.log.Debugf("[frame %d] admitting %s", frame, p.ID)
			sim.Manager.admit(p, frame)
		}
	}

	res := sim.Manager.stepFrame(frame)
	sim.record(frame, res)

	sim.table = append(sim.table, NextRow(sim.LastRow(), sim.Processes, res.States))
	sim.Frame++
	return res
}

func (sim *Simulator) record(frame int, res FrameResult) {
	for _, id := range res.Admitted {
		sim.Trace.RecordAdmission(simtrace.AdmissionRecord{ProcessID: id, Frame: frame, Admitted: true, Reason: "granted"})
	}
	for _, id := range res.Deferred {
		sim.Trace.RecordAdmission(simtrace.AdmissionRecord{ProcessID: id, Frame: frame, Admitted: false, Reason: "no free segment large enough"})
	}
	for _, id := range res.Preempted {
		sim.Trace.RecordPreemption(simtrace.PreemptionRecord{ProcessID: id, Frame: frame})
	}
	for _, id := range res.Released {
		sim.Trace.RecordRelease(simtrace.ReleaseRecord{ProcessID: id, Frame: frame})
	}
}

// Run advances frames until every process has finished, the horizon is
// reached, or ctx is cancelled. Frames are atomic: cancellation is only
// observed between frames. The optional hook runs after each frame.
func (sim *Simulator) Run(ctx context.Context, hook func(frame int, res FrameResult)) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "simulation.run",
		trace.WithAttributes(
			attribute.String("run.id", sim.RunID),
			attribute.String("strategy", string(sim.Strategy())),
			attribute.Int("processes", len(sim.Processes)),
		))
	defer span.End()

	sim.log.Infof("starting simulation with %d processes", len(sim.Processes))
	for !sim.Done() {
		if err := ctx.Err(); err != nil {
			sim.log.Warnf("simulation cancelled at frame %d", sim.Frame)
			return err
		}
		if sim.Frame >= sim.Horizon {
			sim.log.Warnf("horizon of %d frames reached with unfinished processes", sim.Horizon)
			break
		}
		frame := sim.Frame
		res := sim.RunFrame()
		span.AddEvent("frame", trace.WithAttributes(
			attribute.Int("frame", frame),
			attribute.Int("touched", len(res.States)),
			attribute.StringSlice("admitted", res.Admitted),
			attribute.StringSlice("released", res.Released),
		))
		if hook != nil {
			hook(frame, res)
		}
	}
	sim.log.Infof("simulation ended after %d frames", sim.Frame)
	return nil
}
