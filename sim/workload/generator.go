// Package workload produces the process arrivals that drive a simulation.
// Sources are pure functions of the tick: calling Arrivals twice for the
// same tick yields the same processes with the same IDs.
package workload

import (
	"sort"

	"github.com/inference-sim/quantum-sim/sim"
)

// Every source in this package satisfies sim.ArrivalSource.
var (
	_ sim.ArrivalSource = (*Static)(nil)
	_ sim.ArrivalSource = Cyclic{}
)

// Arrival is a process scheduled to arrive at a given tick.
type Arrival struct {
	Tick    int64
	Process sim.ProcessSpec
}

// Static replays a fixed list of arrivals.
type Static struct {
	byTick   map[int64][]sim.ProcessSpec
	lastTick int64
	count    int
}

// NewStatic indexes arrivals by tick. Arrivals sharing a tick keep their
// relative order.
func NewStatic(arrivals []Arrival) *Static {
	sorted := make([]Arrival, len(arrivals))
	copy(sorted, arrivals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tick < sorted[j].Tick
	})
	s := &Static{byTick: make(map[int64][]sim.ProcessSpec), lastTick: -1, count: len(sorted)}
	for _, a := range sorted {
		s.byTick[a.Tick] = append(s.byTick[a.Tick], a.Process)
		s.lastTick = a.Tick
	}
	return s
}

func (s *Static) Arrivals(tick int64) []sim.ProcessSpec {
	specs := s.byTick[tick]
	out := make([]sim.ProcessSpec, len(specs))
	copy(out, specs)
	return out
}

func (s *Static) Exhausted(tick int64) bool {
	return tick > s.lastTick
}

// Len returns the total number of arrivals.
func (s *Static) Len() int {
	return s.count
}

// batchWork is the fixed list of work amounts compared by the report command.
var batchWork = []int64{60, 20, 10, 70, 50, 30, 40, 50, 70, 20}

// NewBatch returns the report workload: ten processes with IDs 0..9, process i
// arriving at tick i.
func NewBatch() *Static {
	arrivals := make([]Arrival, len(batchWork))
	for i, w := range batchWork {
		arrivals[i] = Arrival{
			Tick:    int64(i),
			Process: sim.ProcessSpec{ID: uint32(i), WorkTotal: w, PriorityWeight: 1},
		}
	}
	return NewStatic(arrivals)
}

// cyclicPeriod is the length of the repeating arrival pattern in ticks.
const cyclicPeriod = 20

// cyclicSlots lists (offset within period, work) pairs of the interactive workload.
var cyclicSlots = []struct {
	offset int64
	work   int64
}{
	{0, 60}, {3, 20}, {5, 10}, {9, 70}, {10, 50},
	{12, 30}, {14, 40}, {16, 50}, {17, 70}, {19, 20},
}

// Cyclic repeats a fixed arrival pattern every 20 ticks forever. IDs start at
// 1 and increase by one per arrival; they are derived from the tick, so the
// generator holds no mutable state.
type Cyclic struct{}

// NewCyclic returns the interactive workload.
func NewCyclic() Cyclic {
	return Cyclic{}
}

func (Cyclic) Arrivals(tick int64) []sim.ProcessSpec {
	if tick < 0 {
		return nil
	}
	period, offset := tick/cyclicPeriod, tick%cyclicPeriod
	for i, slot := range cyclicSlots {
		if slot.offset == offset {
			id := period*int64(len(cyclicSlots)) + int64(i) + 1
			return []sim.ProcessSpec{{ID: uint32(id), WorkTotal: slot.work, PriorityWeight: 1}}
		}
	}
	return nil
}

func (Cyclic) Exhausted(int64) bool {
	return false
}
