package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	// GIVEN no trace at all
	// WHEN summarized
	summary := Summarize(nil)

	// THEN counts are zero and maps are usable
	if summary.GrantedCount != 0 || summary.DeferredCount != 0 {
		t.Error("expected 0 granted and deferred")
	}
	if summary.DeferredByProcess == nil || summary.PreemptionsByProcess == nil {
		t.Error("expected non-nil per-process maps")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace()

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.GrantedCount != 0 || summary.DeferredCount != 0 {
		t.Error("expected 0 granted and deferred")
	}
	if summary.ReleasedCount != 0 || summary.PreemptionCount != 0 {
		t.Error("expected 0 releases and preemptions")
	}
	if len(summary.DeferredByProcess) != 0 {
		t.Error("expected empty deferral distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace where B is deferred twice and 1 is preempted twice
	st := NewSimulationTrace()
	st.RecordAdmission(AdmissionRecord{ProcessID: "A", Frame: 0, Admitted: true})
	st.RecordAdmission(AdmissionRecord{ProcessID: "B", Frame: 0, Admitted: false})
	st.RecordAdmission(AdmissionRecord{ProcessID: "B", Frame: 1, Admitted: false})
	st.RecordAdmission(AdmissionRecord{ProcessID: "B", Frame: 2, Admitted: true})
	st.RecordRelease(ReleaseRecord{ProcessID: "A", Frame: 2})
	st.RecordPreemption(PreemptionRecord{ProcessID: "1", Frame: 2})
	st.RecordPreemption(PreemptionRecord{ProcessID: "1", Frame: 6})
	st.RecordPreemption(PreemptionRecord{ProcessID: "2", Frame: 4})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.GrantedCount != 2 {
		t.Errorf("expected 2 granted, got %d", summary.GrantedCount)
	}
	if summary.DeferredCount != 2 {
		t.Errorf("expected 2 deferred, got %d", summary.DeferredCount)
	}
	if summary.DeferredByProcess["B"] != 2 {
		t.Errorf("expected B deferred twice, got %d", summary.DeferredByProcess["B"])
	}
	if summary.ReleasedCount != 1 {
		t.Errorf("expected 1 release, got %d", summary.ReleasedCount)
	}
	if summary.PreemptionCount != 3 {
		t.Errorf("expected 3 preemptions, got %d", summary.PreemptionCount)
	}
	if summary.PreemptionsByProcess["1"] != 2 || summary.PreemptionsByProcess["2"] != 1 {
		t.Errorf("unexpected preemption distribution: %v", summary.PreemptionsByProcess)
	}
}
