package cmd

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framesim/framesim/sim"
	"github.com/framesim/framesim/sim/trace"
)

// printMemoryFrame writes the console view of one memory frame: the
// admissions and releases, the segment table and the remaining durations.
func printMemoryFrame(w io.Writer, frame int, res sim.FrameResult, mm *sim.MemoryManager) {
	fmt.Fprintf(w, "Frame %d\n", frame)
	for _, id := range res.Released {
		fmt.Fprintf(w, "Releasing memory of %s\n", id)
	}
	for _, id := range res.Admitted {
		fmt.Fprintf(w, "Allocating memory for %s\n", id)
	}
	fmt.Fprint(w, mm.Pool.Render())

	remaining := mm.Remaining(frame)
	parts := make([]string, len(remaining))
	for i, r := range remaining {
		parts[i] = fmt.Sprintf("%s: %d", r.ID, r.Frames)
	}
	fmt.Fprintf(w, "Remaining: %s\n", strings.Join(parts, ", "))
}

// stateTableDoc is the machine-readable form of a CPU run.
type stateTableDoc struct {
	Processes []sim.Process        `yaml:"processes"`
	Frames    [][]sim.ProcessState `yaml:"frames"`
}

// printStateTable writes the state table, one row per frame and one column per process.
func printStateTable(w io.Writer, procs []sim.Process, table [][]sim.ProcessState, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(stateTableDoc{Processes: procs, Frames: table})
	}

	fmt.Fprintf(w, "%6s", "frame")
	for _, p := range procs {
		fmt.Fprintf(w, " %12s", "P"+p.ID)
	}
	fmt.Fprintln(w)
	for f, row := range table {
		fmt.Fprintf(w, "%6d", f)
		for _, s := range row {
			fmt.Fprintf(w, " %12s", s)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Decision Trace ===")
	fmt.Fprintf(w, "Grants               : %d\n", ts.GrantedCount)
	fmt.Fprintf(w, "Deferred Admissions  : %d\n", ts.DeferredCount)
	fmt.Fprintf(w, "Releases             : %d\n", ts.ReleasedCount)
	fmt.Fprintf(w, "Preemptions          : %d\n", ts.PreemptionCount)
}
