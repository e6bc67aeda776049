// Defines the Process value that models one simulated process in the scheduler.
// Tracks requested work, progress, and the time spent waiting in the ready queue.

package sim

import (
	"fmt"
)

// ProcessSpec describes a process as handed to the engine at admission.
type ProcessSpec struct {
	ID             uint32 // External identifier, assigned by the workload generator
	WorkTotal      int64  // Requested amount of work
	PriorityWeight int64  // Work units advanced per quantum tick; 0 means 1
}

// Process models a single process's workload and accumulated timing stats.
// Process is a value: Execute and Wait return updated copies and never
// modify the receiver, so earlier snapshots stay valid.
//
// WorkDone + WorkRemaining == WorkTotal holds for every value produced by
// NewProcess, Execute and Wait.
type Process struct {
	ID             uint32
	PriorityWeight int64 // Multiplier applied to every quantum this process runs for

	WorkTotal     int64 // Fixed at creation; key for shortest-job-next
	WorkRemaining int64 // Never negative; key for shortest-remaining-time
	WorkDone      int64 // Non-decreasing

	WaitTime int64 // Ticks spent in the ready queue while another process ran
}

// NewProcess creates a process that has done no work and waited no time.
// A zero PriorityWeight is treated as 1. Negative work or weight panics.
func NewProcess(spec ProcessSpec) Process {
	if spec.WorkTotal < 0 {
		panic(fmt.Sprintf("NewProcess: WorkTotal must be >= 0, got %d", spec.WorkTotal))
	}
	weight := spec.PriorityWeight
	if weight == 0 {
		weight = 1
	}
	if weight < 0 {
		panic(fmt.Sprintf("NewProcess: PriorityWeight must be >= 0, got %d", spec.PriorityWeight))
	}
	return Process{
		ID:             spec.ID,
		PriorityWeight: weight,
		WorkTotal:      spec.WorkTotal,
		WorkRemaining:  spec.WorkTotal,
	}
}

// Execute runs the process for quantum ticks and returns the updated process
// along with the amount of work actually done. The work done is
// quantum*PriorityWeight, capped at WorkRemaining, for any quantum up to
// math.MaxInt64.
func (p Process) Execute(quantum int64) (Process, int64) {
	if quantum < 0 {
		panic(fmt.Sprintf("Process.Execute: quantum must be >= 0, got %d", quantum))
	}
	// Compare before multiplying: quantum*PriorityWeight may overflow int64.
	var ran int64
	switch {
	case p.PriorityWeight <= 0:
		ran = 0
	case quantum > p.WorkRemaining/p.PriorityWeight:
		ran = p.WorkRemaining
	default:
		ran = min(quantum*p.PriorityWeight, p.WorkRemaining)
	}
	p.WorkRemaining -= ran
	p.WorkDone += ran
	return p, ran
}

// Wait returns the process with ticks added to its accumulated wait time.
func (p Process) Wait(ticks int64) Process {
	if ticks < 0 {
		panic(fmt.Sprintf("Process.Wait: ticks must be >= 0, got %d", ticks))
	}
	p.WaitTime += ticks
	return p
}

// IsComplete reports whether the process has no work left.
func (p Process) IsComplete() bool {
	return p.WorkRemaining == 0
}

// TurnaroundTime is the time from admission to (potential) completion.
func (p Process) TurnaroundTime() int64 {
	return p.WaitTime + p.WorkDone
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, Left: %d, Done: %d, Total: %d, Wait: %d)",
		p.ID, p.WorkRemaining, p.WorkDone, p.WorkTotal, p.WaitTime)
}
