package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAdmissions int
	TotalCycles     int
	IdleCycles      int
	Retirements     int
	Readmissions    int
	MeanTicksPerRun float64 // over non-idle cycles
	MaxQueueLength  int
	RunDistribution map[uint32]int // process ID → number of cycles it ran
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		RunDistribution: make(map[uint32]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAdmissions = len(st.Admissions)
	summary.TotalCycles = len(st.Cycles)

	var ticks int64
	for _, c := range st.Cycles {
		if len(c.QueueOrder) > summary.MaxQueueLength {
			summary.MaxQueueLength = len(c.QueueOrder)
		}
		switch c.Outcome {
		case OutcomeIdle:
			summary.IdleCycles++
			continue
		case OutcomeRetired:
			summary.Retirements++
		case OutcomeReadmitted:
			summary.Readmissions++
		}
		ticks += c.TicksRun
		summary.RunDistribution[c.ProcessID]++
	}

	if busy := summary.TotalCycles - summary.IdleCycles; busy > 0 {
		summary.MeanTicksPerRun = float64(ticks) / float64(busy)
	}
	return summary
}
