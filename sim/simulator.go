// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/quantum-sim/sim/trace"
)

// ArrivalSource supplies the processes that arrive at each tick.
// sim/workload provides the implementations.
type ArrivalSource interface {
	Arrivals(tick int64) []ProcessSpec
	Exhausted(tick int64) bool
}

// SimulatorConfig holds the parameters of one simulation run.
type SimulatorConfig struct {
	Policy        Policy
	Order         Comparator // overrides Policy when non-nil
	Quantum       int64
	ContextSwitch int64
	Horizon       int64 // max cycles; 0 = run until the workload is exhausted and the queue drains
	Trace         trace.TraceConfig
}

// Validate checks parameter ranges.
func (c SimulatorConfig) Validate() error {
	if c.Order == nil && !IsValidPolicy(string(c.Policy)) {
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", c.Quantum)
	}
	if c.ContextSwitch < 0 {
		return fmt.Errorf("context switch must be non-negative, got %d", c.ContextSwitch)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", c.Horizon)
	}
	return nil
}

// Cycle describes one scheduling cycle to an OnCycle observer.
type Cycle struct {
	Clock    int64
	Running  Engine // state after Run, before Reorder; the head is the process that ran
	Next     Engine // state after Reorder
	TicksRun int64
	Outcome  trace.Outcome
}

// Simulator drives an Engine over a workload, one cycle per tick:
// admit the tick's arrivals, run the head for one quantum, reorder.
type Simulator struct {
	Clock         int64
	Horizon       int64
	Quantum       int64
	ContextSwitch int64
	Order         Comparator
	Engine        Engine
	Workload      ArrivalSource
	Metrics       *Metrics
	Trace         *trace.SimulationTrace // nil when tracing is off
	// OnCycle, if set, is called after every cycle, including idle ones.
	OnCycle func(Cycle)
}

// NewSimulator creates a simulator over workload.
// Panics on an invalid config; callers validate user input first.
func NewSimulator(cfg SimulatorConfig, workload ArrivalSource) *Simulator {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	if workload == nil {
		panic("NewSimulator: workload must not be nil")
	}
	order := cfg.Order
	if order == nil {
		order = NewComparator(string(cfg.Policy))
	}
	s := &Simulator{
		Horizon:       cfg.Horizon,
		Quantum:       cfg.Quantum,
		ContextSwitch: cfg.ContextSwitch,
		Order:         order,
		Engine:        NewEngine(),
		Workload:      workload,
		Metrics:       NewMetrics(),
	}
	if cfg.Trace.Enabled() {
		s.Trace = trace.NewSimulationTrace(cfg.Trace)
	}
	return s
}

// Done reports whether the run is over: the horizon is reached, or the
// workload is exhausted and the ready queue has drained.
func (s *Simulator) Done() bool {
	if s.Horizon > 0 && s.Clock >= s.Horizon {
		return true
	}
	return s.Engine.IsEmpty() && s.Workload.Exhausted(s.Clock)
}

// Run steps until Done. With Horizon 0 and an endless workload it never returns.
func (s *Simulator) Run() {
	for !s.Done() {
		s.Step()
	}
	logrus.Debugf("simulation finished at cycle %d: %d processes completed, %d still queued",
		s.Clock, s.Metrics.CompletedProcesses, s.Engine.Len())
}

// Step executes one cycle and advances the clock.
func (s *Simulator) Step() {
	for _, spec := range s.Workload.Arrivals(s.Clock) {
		seq := s.Engine.NextSeq()
		s.Engine = s.Engine.Admit(spec)
		logrus.Debugf("[cycle %d] admitted process %d (work=%d, weight=%d) as #%d",
			s.Clock, spec.ID, spec.WorkTotal, spec.PriorityWeight, seq)
		if s.Trace != nil {
			s.Trace.RecordAdmission(trace.AdmissionRecord{
				ProcessID: spec.ID,
				Seq:       seq,
				Clock:     s.Clock,
				WorkTotal: spec.WorkTotal,
			})
		}
	}

	if s.Engine.IsEmpty() {
		s.Metrics.IdleCycles++
		s.finishCycle(Cycle{Clock: s.Clock, Running: s.Engine, Next: s.Engine, Outcome: trace.OutcomeIdle})
		return
	}

	running := s.Engine.Run(s.Quantum)
	ran := running.LastRun()
	head, _ := running.Head()

	next := running.Reorder(s.Order, s.ContextSwitch)
	outcome := trace.OutcomeReadmitted
	if len(next.finished) > len(running.finished) {
		outcome = trace.OutcomeRetired
		s.Metrics.RecordFinished(next.finished[len(next.finished)-1])
	}

	s.Metrics.Cycles++
	s.Metrics.BusyTicks += ran
	s.Metrics.ContextSwitches++
	s.Metrics.SwitchTicks += s.ContextSwitch

	logrus.Debugf("[cycle %d] process %d ran %d ticks (left=%d) -> %s; queue %v",
		s.Clock, head.Process.ID, ran, head.Process.WorkRemaining, outcome, next.ReadyQueue())

	s.Engine = next
	s.finishCycle(Cycle{Clock: s.Clock, Running: running, Next: next, TicksRun: ran, Outcome: outcome})
}

func (s *Simulator) finishCycle(c Cycle) {
	if s.Trace != nil {
		rec := trace.CycleRecord{
			Clock:      c.Clock,
			TicksRun:   c.TicksRun,
			Outcome:    c.Outcome,
			QueueOrder: c.Next.ReadyQueue().IDs(),
		}
		if c.Outcome != trace.OutcomeIdle {
			head, _ := c.Running.Head()
			rec.ProcessID = head.Process.ID
			rec.ContextSwitch = s.ContextSwitch
		}
		s.Trace.RecordCycle(rec)
	}
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("[cycle %d] ready queue:\n%# v", c.Clock, pretty.Formatter(c.Next.ReadyQueue().Items()))
	}
	if s.OnCycle != nil {
		s.OnCycle(c)
	}
	s.Clock++
}
