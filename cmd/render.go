package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/quantum-sim/sim"
	"github.com/inference-sim/quantum-sim/sim/report"
)

// renderCycle prints the ready queue as it stood after the head ran, before
// it was reordered. The first row is the process that ran.
func renderCycle(w io.Writer, c sim.Cycle) {
	if c.Running.IsEmpty() {
		_, _ = fmt.Fprintf(w, "Cycle %d: idle\n\n", c.Clock)
		return
	}
	head, _ := c.Running.Head()
	_, _ = fmt.Fprintf(w, "Cycle %d: process %d ran %d ticks (%s)\n", c.Clock, head.Process.ID, c.TicksRun, c.Outcome)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Seq", "ID", "Weight", "Total", "Done", "Remaining", "Wait"})
	table.AppendBulk(queueRows(c.Running.ReadyQueue()))
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func queueRows(rq sim.ReadyQueue) [][]string {
	rows := make([][]string, 0, rq.Len())
	for _, e := range rq.Items() {
		p := e.Process
		rows = append(rows, []string{
			strconv.FormatUint(e.Seq, 10),
			strconv.FormatUint(uint64(p.ID), 10),
			strconv.FormatInt(p.PriorityWeight, 10),
			strconv.FormatInt(p.WorkTotal, 10),
			strconv.FormatInt(p.WorkDone, 10),
			strconv.FormatInt(p.WorkRemaining, 10),
			strconv.FormatInt(p.WaitTime, 10),
		})
	}
	return rows
}

func renderReportTitle(w io.Writer) {
	_, _ = fmt.Fprintln(w, "The Scheduler Report")
	_, _ = fmt.Fprintln(w)
}

// renderReportGroup prints one comparison table for a (quantum, context switch) setting.
func renderReportGroup(w io.Writer, g report.Group) {
	_, _ = fmt.Fprintf(w, "Quantum: %d\tContext switch: %d\n", g.Setting.Quantum, g.Setting.ContextSwitch)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Avg Turnaround Time", "Turnaround p50", "Turnaround p90", "Waiting Time", "Completed"})
	var completed int
	for _, r := range g.Rows {
		table.Append([]string{
			r.Policy.DisplayName(),
			fmt.Sprintf("%.2f", r.MeanTurnaround),
			fmt.Sprintf("%.2f", r.P50Turnaround),
			fmt.Sprintf("%.2f", r.P90Turnaround),
			fmt.Sprintf("%.2f", r.MeanWait),
			strconv.Itoa(r.Completed),
		})
		completed += r.Completed
	}
	table.SetFooter([]string{"", "", "", "", "Total", strconv.Itoa(completed)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// renderRunDistribution prints how many cycles each process ran, by process ID.
func renderRunDistribution(w io.Writer, dist map[uint32]int) {
	ids := slices.Sorted(maps.Keys(dist))
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{strconv.FormatUint(uint64(id), 10), strconv.Itoa(dist[id])})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Cycles Run"})
	table.AppendBulk(rows)
	table.Render()
}
