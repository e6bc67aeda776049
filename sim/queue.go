// Implements the QueueEntry wrapper and the read-only ReadyQueue view
// the engine hands out to callers.

package sim

import (
	"fmt"
	"strings"
)

// QueueEntry pairs a process with the admission sequence number it was given
// when it entered the ready queue. Seq is unique per engine and grows with
// every admission, so it is both the FCFS key and a stable identity.
type QueueEntry struct {
	Seq     uint64
	Process Process
}

// Wait forwards to Process.Wait, keeping Seq.
func (e QueueEntry) Wait(ticks int64) QueueEntry {
	e.Process = e.Process.Wait(ticks)
	return e
}

// Execute forwards to Process.Execute, keeping Seq.
func (e QueueEntry) Execute(quantum int64) (QueueEntry, int64) {
	var ran int64
	e.Process, ran = e.Process.Execute(quantum)
	return e, ran
}

func (e QueueEntry) String() string {
	return fmt.Sprintf("#%d %s", e.Seq, e.Process)
}

// ReadyQueue is an ordered, read-only view of the engine's ready queue.
// The head (index 0) is the entry that the next Run executes.
type ReadyQueue struct {
	queue []QueueEntry
}

// Len returns the number of entries in the queue.
func (rq ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the entry at the front of the queue without removing it.
// The second return value is false if the queue is empty.
func (rq ReadyQueue) Peek() (QueueEntry, bool) {
	if len(rq.queue) == 0 {
		return QueueEntry{}, false
	}
	return rq.queue[0], true
}

// At returns the i-th entry. Panics if i is out of range.
func (rq ReadyQueue) At(i int) QueueEntry {
	return rq.queue[i]
}

// Items returns a copy of the queue contents in order.
func (rq ReadyQueue) Items() []QueueEntry {
	out := make([]QueueEntry, len(rq.queue))
	copy(out, rq.queue)
	return out
}

// IDs returns the process IDs in queue order.
func (rq ReadyQueue) IDs() []uint32 {
	ids := make([]uint32, len(rq.queue))
	for i, e := range rq.queue {
		ids[i] = e.Process.ID
	}
	return ids
}

func (rq ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range rq.queue {
		sb.WriteString(fmt.Sprint(e.Process.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
