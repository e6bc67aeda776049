// Package trace records what the scheduler decided on every cycle: which
// process ran, for how long, whether it retired or went back into the queue,
// and the queue order that resulted. Records are plain data; the simulator
// writes them and Summarize reads them.
package trace

// TraceLevel selects how much the simulator records.
type TraceLevel string

const (
	// TraceLevelNone records nothing; the simulator keeps no trace at all.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions records each admission and each run+reorder cycle.
	TraceLevelDecisions TraceLevel = "decisions"
)

// IsValidTraceLevel reports whether level can be passed on the command line.
// The empty string is accepted and means none.
func IsValidTraceLevel(level string) bool {
	switch TraceLevel(level) {
	case "", TraceLevelNone, TraceLevelDecisions:
		return true
	}
	return false
}

// TraceConfig is the tracing part of a simulator config.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled is true only for TraceLevelDecisions.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// SimulationTrace holds one run's records in the order they happened.
type SimulationTrace struct {
	Config     TraceConfig
	Admissions []AdmissionRecord
	Cycles     []CycleRecord // one per clock tick, idle ticks included
}

func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Admissions: []AdmissionRecord{},
		Cycles:     []CycleRecord{},
	}
}

func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

func (st *SimulationTrace) RecordCycle(record CycleRecord) {
	st.Cycles = append(st.Cycles, record)
}
