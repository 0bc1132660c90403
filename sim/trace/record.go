// Package trace provides decision-trace recording for frame-stepped simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AdmissionRecord captures a single request for the resource.
// Admitted is false when the process was told to retry on a later frame.
type AdmissionRecord struct {
	ProcessID string
	Frame     int
	Admitted  bool
	Reason    string
}

// ReleaseRecord captures a process returning its resource for good.
type ReleaseRecord struct {
	ProcessID string
	Frame     int
}

// PreemptionRecord captures a running process being requeued on quantum expiry.
type PreemptionRecord struct {
	ProcessID string
	Frame     int
}
