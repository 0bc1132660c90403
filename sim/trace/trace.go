package trace

// SimulationTrace collects decision records during a simulation, in the order they happened.
type SimulationTrace struct {
	Admissions  []AdmissionRecord
	Releases    []ReleaseRecord
	Preemptions []PreemptionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Admissions:  make([]AdmissionRecord, 0),
		Releases:    make([]ReleaseRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
	}
}

// RecordAdmission appends an admission decision record.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

// RecordRelease appends a release record.
func (st *SimulationTrace) RecordRelease(record ReleaseRecord) {
	st.Releases = append(st.Releases, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	st.Preemptions = append(st.Preemptions, record)
}
