// Package sim provides the preemptive CPU scheduling engine and the
// tick-driven simulator built on it.
//
// # Reading Guide
//
// Start with these three files to understand the scheduling kernel:
//   - process.go: Process accounting (work remaining, work done, wait time)
//   - engine.go: The Engine state machine (Admit, Run, Reorder)
//   - simulator.go: The cycle loop that feeds arrivals into the engine
//
// # Architecture
//
// The sim package defines the engine, the ordering policies and the
// ArrivalSource interface; everything around them lives in sub-packages:
//   - sim/workload/: Arrival sources (cyclic, batch, static, random, YAML and CSV files)
//   - sim/trace/: Per-cycle decision records and their summary
//   - sim/report/: Parallel comparison of every policy over one workload
//
// Engine is a value type. Every transition returns a new Engine, so a
// snapshot taken before Reorder (the Running field of a Cycle) still shows
// the queue exactly as it stood when the head ran.
//
// # Key Interfaces
//
//   - Comparator: orders the ready queue (FCFS, shortest job next,
//     shortest remaining time, or any caller-supplied function)
//   - ArrivalSource: yields the processes that arrive at a tick
package sim
