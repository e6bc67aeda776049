// Record types the simulator appends to a SimulationTrace.

package trace

// AdmissionRecord captures a process entering the ready queue.
type AdmissionRecord struct {
	ProcessID uint32
	Seq       uint64
	Clock     int64
	WorkTotal int64
}

// Outcome is what happened to the process that ran during a cycle.
type Outcome string

const (
	OutcomeIdle       Outcome = "idle"       // queue was empty; nothing ran
	OutcomeRetired    Outcome = "retired"    // process completed and left the queue
	OutcomeReadmitted Outcome = "readmitted" // process went back into the queue
)

// CycleRecord captures a single run+reorder cycle.
type CycleRecord struct {
	Clock         int64
	ProcessID     uint32 // process that ran; zero when Outcome is idle
	TicksRun      int64
	ContextSwitch int64
	Outcome       Outcome
	QueueOrder    []uint32 // process IDs after the reorder, head first
}
