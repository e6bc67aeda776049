// sim/engine.go
package sim

import (
	"fmt"
	"slices"
)

// Engine is the scheduling state machine. It owns the ready queue, the list
// of finished processes and the admission counter.
//
// Engine is a value: Admit, Run and Reorder return a new Engine and leave the
// receiver untouched, so a caller can keep an old snapshot and compare it with
// a later one. The zero Engine is not usable; call NewEngine.
//
// A scheduling cycle is Run followed by Reorder:
//   - Run executes the head entry and charges the work it actually did as wait
//     time to every other entry. The head stays at the front.
//   - Reorder takes the head off the queue, charges the context-switch cost to
//     every entry that stays in the system, retires the head if it is complete
//     (or re-admits it with a fresh sequence number if not), and sorts the queue.
type Engine struct {
	ready    []QueueEntry
	finished []QueueEntry
	nextSeq  uint64
	lastRun  int64
}

// NewEngine creates an empty engine whose first admission gets sequence 1.
func NewEngine() Engine {
	return Engine{nextSeq: 1}
}

// Admit appends a new process to the tail of the ready queue.
// It does not reorder or retire anything.
func (e Engine) Admit(spec ProcessSpec) Engine {
	e.mustBeInitialized("Admit")
	entry := QueueEntry{Seq: e.nextSeq, Process: NewProcess(spec)}
	e.ready = append(slices.Clone(e.ready), entry)
	e.nextSeq++
	return e
}

// Run executes the head entry for quantum ticks and charges the work it did as
// wait time to every other entry. On an empty queue Run returns e unchanged.
func (e Engine) Run(quantum int64) Engine {
	if quantum < 0 {
		panic(fmt.Sprintf("Engine.Run: quantum must be >= 0, got %d", quantum))
	}
	if len(e.ready) == 0 {
		return e
	}
	ready := make([]QueueEntry, len(e.ready))
	head, ran := e.ready[0].Execute(quantum)
	ready[0] = head
	for i, entry := range e.ready[1:] {
		ready[i+1] = entry.Wait(ran)
	}
	e.ready = ready
	e.lastRun = ran
	return e
}

// Reorder removes the head entry, charges contextSwitch ticks of wait to every
// entry that remains in the system, and sorts the queue with order.
//
// A complete head moves to the finished list without the switch charge. An
// incomplete head is charged the switch once and re-admitted at the tail with a
// new sequence number before the sort, so under FCFS it goes behind everything
// already waiting. On an empty queue Reorder is a no-op.
func (e Engine) Reorder(order Comparator, contextSwitch int64) Engine {
	if order == nil {
		panic("Engine.Reorder: order must not be nil")
	}
	if contextSwitch < 0 {
		panic(fmt.Sprintf("Engine.Reorder: contextSwitch must be >= 0, got %d", contextSwitch))
	}
	if len(e.ready) == 0 {
		return e
	}

	head := e.ready[0]
	ready := make([]QueueEntry, 0, len(e.ready))
	for _, entry := range e.ready[1:] {
		ready = append(ready, entry.Wait(contextSwitch))
	}

	if head.Process.IsComplete() {
		e.finished = append(slices.Clone(e.finished), head)
	} else {
		e.mustBeInitialized("Reorder")
		head = head.Wait(contextSwitch)
		head.Seq = e.nextSeq
		e.nextSeq++
		ready = append(ready, head)
	}

	// Stable: entries the policy ties keep their relative order.
	slices.SortStableFunc(ready, order)
	e.ready = ready
	e.lastRun = 0
	return e
}

// ReadyQueue returns the current ready queue; the head is index 0.
func (e Engine) ReadyQueue() ReadyQueue {
	return ReadyQueue{queue: e.ready}
}

// Head returns the entry the next Run will execute.
func (e Engine) Head() (QueueEntry, bool) {
	return e.ReadyQueue().Peek()
}

// Finished returns the retired entries in retirement order.
func (e Engine) Finished() []QueueEntry {
	return slices.Clone(e.finished)
}

// IsEmpty reports whether the ready queue has no entries.
func (e Engine) IsEmpty() bool {
	return len(e.ready) == 0
}

// Len returns the number of entries in the ready queue.
func (e Engine) Len() int {
	return len(e.ready)
}

// LastRun returns how much work the most recent Run did on the head entry.
// Reorder resets it to zero, so an empty engine always reports zero.
func (e Engine) LastRun() int64 {
	return e.lastRun
}

// NextSeq returns the sequence number the next admission will receive.
func (e Engine) NextSeq() uint64 {
	return e.nextSeq
}

func (e Engine) mustBeInitialized(op string) {
	if e.nextSeq == 0 {
		panic(fmt.Sprintf("Engine.%s: engine not initialized; use NewEngine", op))
	}
}
