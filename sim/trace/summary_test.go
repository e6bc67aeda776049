package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalCycles != 0 || summary.TotalAdmissions != 0 {
		t.Error("expected zero counts for nil trace")
	}
	if summary.RunDistribution == nil {
		t.Error("expected non-nil run distribution")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalCycles != 0 || summary.IdleCycles != 0 {
		t.Errorf("expected 0 cycles, got %d (%d idle)", summary.TotalCycles, summary.IdleCycles)
	}
	if summary.Retirements != 0 || summary.Readmissions != 0 {
		t.Error("expected 0 retirements and readmissions")
	}
	if summary.MeanTicksPerRun != 0 {
		t.Errorf("expected 0 mean ticks, got %f", summary.MeanTicksPerRun)
	}
	if len(summary.RunDistribution) != 0 {
		t.Error("expected empty run distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with two runs of process 1, one of process 2, and an idle cycle
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordAdmission(AdmissionRecord{ProcessID: 1})
	st.RecordAdmission(AdmissionRecord{ProcessID: 2})
	st.RecordCycle(CycleRecord{ProcessID: 1, TicksRun: 4, Outcome: OutcomeReadmitted, QueueOrder: []uint32{2, 1}})
	st.RecordCycle(CycleRecord{ProcessID: 2, TicksRun: 3, Outcome: OutcomeRetired, QueueOrder: []uint32{1}})
	st.RecordCycle(CycleRecord{ProcessID: 1, TicksRun: 2, Outcome: OutcomeRetired, QueueOrder: nil})
	st.RecordCycle(CycleRecord{Outcome: OutcomeIdle})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts and means reflect the records
	if summary.TotalAdmissions != 2 {
		t.Errorf("expected 2 admissions, got %d", summary.TotalAdmissions)
	}
	if summary.TotalCycles != 4 || summary.IdleCycles != 1 {
		t.Errorf("expected 4 cycles with 1 idle, got %d with %d idle", summary.TotalCycles, summary.IdleCycles)
	}
	if summary.Retirements != 2 || summary.Readmissions != 1 {
		t.Errorf("expected 2 retirements and 1 readmission, got %d and %d", summary.Retirements, summary.Readmissions)
	}
	if summary.MeanTicksPerRun != 3.0 {
		t.Errorf("expected mean ticks 3.0, got %f", summary.MeanTicksPerRun)
	}
	if summary.MaxQueueLength != 2 {
		t.Errorf("expected max queue length 2, got %d", summary.MaxQueueLength)
	}
	if summary.RunDistribution[1] != 2 || summary.RunDistribution[2] != 1 {
		t.Errorf("unexpected run distribution %v", summary.RunDistribution)
	}
}
