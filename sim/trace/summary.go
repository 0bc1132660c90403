package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	GrantedCount    int
	DeferredCount   int
	ReleasedCount   int
	PreemptionCount int
	// DeferredByProcess counts retry signals per process (memory strategy).
	DeferredByProcess map[string]int
	// PreemptionsByProcess counts quantum expiries per process (CPU strategy).
	PreemptionsByProcess map[string]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DeferredByProcess:    make(map[string]int),
		PreemptionsByProcess: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	for _, a := range st.Admissions {
		if a.Admitted {
			summary.GrantedCount++
		} else {
			summary.DeferredCount++
			summary.DeferredByProcess[a.ProcessID]++
		}
	}
	summary.ReleasedCount = len(st.Releases)
	summary.PreemptionCount = len(st.Preemptions)
	for _, p := range st.Preemptions {
		summary.PreemptionsByProcess[p.ProcessID]++
	}
	return summary
}
