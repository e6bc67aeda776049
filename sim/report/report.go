// Package report runs the same workload under several scheduling
// configurations and collects the resulting averages. Each run owns a private
// simulator, so runs execute in parallel with no shared state.
package report

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/inference-sim/quantum-sim/sim"
)

// RunConfig is one simulation to execute.
type RunConfig struct {
	Policy        sim.Policy
	Quantum       int64
	ContextSwitch int64
	Horizon       int64 // 0 = until the workload drains
}

func (c RunConfig) String() string {
	return fmt.Sprintf("%s/q=%d/cs=%d", c.Policy, c.Quantum, c.ContextSwitch)
}

// Result is the outcome of one run.
type Result struct {
	RunID    string
	Config   RunConfig
	Metrics  *sim.Metrics
	Finished []sim.QueueEntry
	Pending  int // processes still queued when the run stopped
}

// WorkloadFactory returns a fresh arrival source for each run.
type WorkloadFactory func() sim.ArrivalSource

// Options tunes RunAll.
type Options struct {
	// Parallelism bounds the number of concurrent runs; <= 0 means unbounded.
	Parallelism int
}

// DefaultSettings are the (quantum, context switch) pairs compared by default.
var DefaultSettings = []sim.ReportConfig{
	{Quantum: 4, ContextSwitch: 0},
	{Quantum: 4, ContextSwitch: 1},
	{Quantum: 8, ContextSwitch: 4},
}

// Configs expands every setting into one RunConfig per built-in policy,
// grouped by setting in policy reporting order.
func Configs(settings []sim.ReportConfig, horizon int64) []RunConfig {
	configs := make([]RunConfig, 0, len(settings)*len(sim.AllPolicies()))
	for _, s := range settings {
		for _, p := range sim.AllPolicies() {
			configs = append(configs, RunConfig{
				Policy:        p,
				Quantum:       s.Quantum,
				ContextSwitch: s.ContextSwitch,
				Horizon:       horizon,
			})
		}
	}
	return configs
}

// RunAll executes every config against its own workload and returns results
// in config order. The first failing run (including a panic inside the
// engine) cancels runs that have not started yet and is returned as the error.
func RunAll(ctx context.Context, configs []RunConfig, newWorkload WorkloadFactory, opts Options) ([]Result, error) {
	if newWorkload == nil {
		return nil, fmt.Errorf("report: workload factory must not be nil")
	}
	results := make([]Result, len(configs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for i, cfg := range configs {
		g.Go(func() error {
			res, err := runOne(ctx, cfg, newWorkload)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne executes a single configuration and converts a panic into an error.
// It checks ctx between cycles, so cancelling stops a run in progress.
func runOne(ctx context.Context, cfg RunConfig, newWorkload WorkloadFactory) (res Result, err error) {
	runID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"run": runID, "config": cfg.String()})

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run %s (%s) failed: %v", runID, cfg, r)
			log.Errorf("run failed: %v", r)
		}
	}()

	simCfg := sim.SimulatorConfig{
		Policy:        cfg.Policy,
		Quantum:       cfg.Quantum,
		ContextSwitch: cfg.ContextSwitch,
		Horizon:       cfg.Horizon,
	}
	if err := simCfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("run %s (%s): %w", runID, cfg, err)
	}
	if cfg.Quantum == 0 && cfg.Horizon == 0 {
		return Result{}, fmt.Errorf("run %s (%s): quantum 0 never finishes without a horizon", runID, cfg)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	src := newWorkload()
	if cfg.Horizon == 0 && !src.Exhausted(math.MaxInt64) {
		return Result{}, fmt.Errorf("run %s (%s): workload never runs out of arrivals; set a horizon", runID, cfg)
	}

	log.Debug("starting run")
	s := sim.NewSimulator(simCfg, src)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			log.Warnf("run cancelled at cycle %d", s.Clock)
			return Result{}, err
		}
		s.Step()
	}
	log.Infof("run complete: %d finished, mean turnaround %.2f, mean wait %.2f",
		s.Metrics.CompletedProcesses, s.Metrics.MeanTurnaround(), s.Metrics.MeanWait())

	return Result{
		RunID:    runID,
		Config:   cfg,
		Metrics:  s.Metrics,
		Finished: s.Engine.Finished(),
		Pending:  s.Engine.Len(),
	}, nil
}

// Row is one line of a comparison table.
type Row struct {
	Policy         sim.Policy
	MeanTurnaround float64
	P50Turnaround  float64
	P90Turnaround  float64
	MeanWait       float64
	Completed      int
}

// Group is the set of rows sharing one (quantum, context switch) setting.
type Group struct {
	Setting sim.ReportConfig
	Rows    []Row
}

// GroupBySetting folds results into one Group per setting, preserving the
// order in which settings first appear.
func GroupBySetting(results []Result) []Group {
	var groups []Group
	index := make(map[sim.ReportConfig]int)
	for _, r := range results {
		key := sim.ReportConfig{Quantum: r.Config.Quantum, ContextSwitch: r.Config.ContextSwitch}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Setting: key})
		}
		groups[i].Rows = append(groups[i].Rows, Row{
			Policy:         r.Config.Policy,
			MeanTurnaround: r.Metrics.MeanTurnaround(),
			P50Turnaround:  r.Metrics.TurnaroundPercentile(50),
			P90Turnaround:  r.Metrics.TurnaroundPercentile(90),
			MeanWait:       r.Metrics.MeanWait(),
			Completed:      r.Metrics.CompletedProcesses,
		})
	}
	return groups
}
