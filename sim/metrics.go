// Tracks simulation-wide and per-process timing metrics for reporting.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about a simulation run for final reporting.
type Metrics struct {
	CompletedProcesses int   // Number of processes retired
	TotalTurnaround    int64 // Sum of TurnaroundTime over finished processes
	TotalWait          int64 // Sum of WaitTime over finished processes
	TotalWork          int64 // Sum of WorkDone over finished processes

	Cycles          int64 // Run+Reorder cycles executed with a non-empty queue
	IdleCycles      int64 // Cycles in which the queue was empty
	ContextSwitches int64 // Reorders performed; each switches away from the process that ran
	BusyTicks       int64 // Sum of work done by Run
	SwitchTicks     int64 // Sum of context-switch costs paid by the CPU

	Turnarounds []int64 // per finished process, in retirement order
	Waits       []int64 // per finished process, in retirement order
}

// NewMetrics returns an empty Metrics ready for recording.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordFinished adds a retired entry to the totals.
func (m *Metrics) RecordFinished(e QueueEntry) {
	m.CompletedProcesses++
	m.TotalTurnaround += e.Process.TurnaroundTime()
	m.TotalWait += e.Process.WaitTime
	m.TotalWork += e.Process.WorkDone
	m.Turnarounds = append(m.Turnarounds, e.Process.TurnaroundTime())
	m.Waits = append(m.Waits, e.Process.WaitTime)
}

// MeanTurnaround is the average turnaround over finished processes, 0 if none finished.
func (m *Metrics) MeanTurnaround() float64 {
	return CalculateMean(m.Turnarounds)
}

// TurnaroundPercentile is the p-th percentile (0-100) of turnaround times, 0 if none finished.
func (m *Metrics) TurnaroundPercentile(p float64) float64 {
	return CalculatePercentile(m.Turnarounds, p)
}

// MeanWait is the average wait time over finished processes, 0 if none finished.
func (m *Metrics) MeanWait() float64 {
	return CalculateMean(m.Waits)
}

// Utilization is the share of simulated CPU time spent doing work rather than switching.
func (m *Metrics) Utilization() float64 {
	total := m.BusyTicks + m.SwitchTicks
	if total == 0 {
		return 0
	}
	return float64(m.BusyTicks) / float64(total)
}

// Print writes aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	_, _ = fmt.Fprintf(w, "Completed Processes  : %d\n", m.CompletedProcesses)
	_, _ = fmt.Fprintf(w, "Cycles               : %d (%d idle)\n", m.Cycles, m.IdleCycles)
	if m.CompletedProcesses > 0 {
		_, _ = fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", m.MeanTurnaround())
		_, _ = fmt.Fprintf(w, "Turnaround p50/p90   : %.2f / %.2f ticks\n", m.TurnaroundPercentile(50), m.TurnaroundPercentile(90))
		_, _ = fmt.Fprintf(w, "Average Wait         : %.2f ticks\n", m.MeanWait())
		_, _ = fmt.Fprintf(w, "Context Switches     : %d\n", m.ContextSwitches)
		_, _ = fmt.Fprintf(w, "CPU Utilization      : %.2f%%\n", 100*m.Utilization())
	}
}
