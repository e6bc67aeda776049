package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/quantum-sim/sim"
	"github.com/inference-sim/quantum-sim/sim/trace"
	"github.com/inference-sim/quantum-sim/sim/workload"
)

var (
	policyName    string        // Ordering policy
	quantum       int64         // Ticks granted to the head process per cycle
	contextSwitch int64         // Wait charged per reorder
	horizon       int64         // Max cycles; 0 runs until the workload drains
	pause         time.Duration // Wall-clock delay between cycles
	clearScreen   bool          // Clear the terminal before each cycle
	configPath    string        // YAML SimConfig
	workloadName  string        // "cyclic", "batch" or a YAML/CSV path
	traceLevel    string        // Decision trace level
)

// runSettings is the resolved configuration of one interactive run.
type runSettings struct {
	Policy        string
	Quantum       int64
	ContextSwitch int64
	Horizon       int64
	Workload      string
}

// mergeConfig overlays cfg onto s. A flag the user set explicitly always wins;
// changed reports whether that happened for a given flag name.
func mergeConfig(s runSettings, cfg *sim.SimConfig, changed func(name string) bool) runSettings {
	if cfg == nil {
		return s
	}
	if cfg.Policy != "" && !changed("policy") {
		s.Policy = cfg.Policy
	}
	if cfg.Quantum != nil && !changed("quantum") {
		s.Quantum = *cfg.Quantum
	}
	if cfg.ContextSwitch != nil && !changed("context-switch") {
		s.ContextSwitch = *cfg.ContextSwitch
	}
	if cfg.Horizon != nil && !changed("horizon") {
		s.Horizon = *cfg.Horizon
	}
	if cfg.Workload != "" && !changed("workload") {
		s.Workload = cfg.Workload
	}
	return s
}

// openWorkload resolves a workload name: the built-in "cyclic" and "batch"
// workloads, or a YAML/CSV file.
func openWorkload(name string) (sim.ArrivalSource, error) {
	switch name {
	case "", "cyclic":
		return workload.NewCyclic(), nil
	case "batch":
		return workload.NewBatch(), nil
	default:
		return workload.Load(name)
	}
}

// loadConfig reads and validates the --config file, if any.
func loadConfig() *sim.SimConfig {
	if configPath == "" {
		return nil
	}
	cfg, err := sim.LoadSimConfig(configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config %s: %v", configPath, err)
	}
	return cfg
}

// runCmd steps the simulator one cycle at a time and prints the ready queue
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive scheduling loop",
	Run: func(cmd *cobra.Command, args []string) {
		settings := mergeConfig(runSettings{
			Policy:        policyName,
			Quantum:       quantum,
			ContextSwitch: contextSwitch,
			Horizon:       horizon,
			Workload:      workloadName,
		}, loadConfig(), cmd.Flags().Changed)

		policy, err := sim.ParsePolicy(settings.Policy)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q", traceLevel)
		}
		cfg := sim.SimulatorConfig{
			Policy:        policy,
			Quantum:       settings.Quantum,
			ContextSwitch: settings.ContextSwitch,
			Horizon:       settings.Horizon,
			Trace:         trace.TraceConfig{Level: trace.TraceLevel(traceLevel)},
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		src, err := openWorkload(settings.Workload)
		if err != nil {
			logrus.Fatalf("Failed to load workload %q: %v", settings.Workload, err)
		}

		logrus.Infof("Starting %s run: quantum=%d, context switch=%d, horizon=%d, workload=%s",
			policy.DisplayName(), cfg.Quantum, cfg.ContextSwitch, cfg.Horizon, settings.Workload)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		s := sim.NewSimulator(cfg, src)
		s.OnCycle = func(c sim.Cycle) {
			if clearScreen {
				_, _ = fmt.Fprint(out, "\033[H\033[2J")
			}
			renderCycle(out, c)
		}
		runInteractive(ctx, s, pause)

		s.Metrics.Print(out)
		if s.Trace != nil {
			renderTraceSummary(out, trace.Summarize(s.Trace))
		}
		logrus.Info("Simulation complete.")
	},
}

// runInteractive steps s until it is done or ctx is cancelled, sleeping
// delay between cycles.
func runInteractive(ctx context.Context, s *sim.Simulator, delay time.Duration) {
	for !s.Done() {
		s.Step()
		if delay <= 0 {
			if ctx.Err() != nil {
				return
			}
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func renderTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "=== Decision Trace ===")
	_, _ = fmt.Fprintf(w, "Admissions           : %d\n", ts.TotalAdmissions)
	_, _ = fmt.Fprintf(w, "Retirements          : %d\n", ts.Retirements)
	_, _ = fmt.Fprintf(w, "Readmissions         : %d\n", ts.Readmissions)
	_, _ = fmt.Fprintf(w, "Mean Ticks Per Run   : %.2f\n", ts.MeanTicksPerRun)
	_, _ = fmt.Fprintf(w, "Max Queue Length     : %d\n", ts.MaxQueueLength)
	if len(ts.RunDistribution) > 0 {
		renderRunDistribution(w, ts.RunDistribution)
	}
}

func init() {
	runCmd.Flags().StringVar(&policyName, "policy", string(sim.PolicyFCFS), fmt.Sprintf("Ordering policy %v", sim.ValidPolicyNames()))
	runCmd.Flags().Int64Var(&quantum, "quantum", 4, "Ticks of CPU granted to the head process each cycle")
	runCmd.Flags().Int64Var(&contextSwitch, "context-switch", 0, "Wait ticks charged to queued processes on every switch")
	runCmd.Flags().Int64Var(&horizon, "horizon", 0, "Maximum number of cycles (0 = until the workload drains)")
	runCmd.Flags().DurationVar(&pause, "pause", time.Second, "Delay between cycles")
	runCmd.Flags().BoolVar(&clearScreen, "clear", false, "Clear the terminal before printing each cycle")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML simulation config")
	runCmd.Flags().StringVar(&workloadName, "workload", "cyclic", "Workload: cyclic, batch, or a YAML/CSV file")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")

	rootCmd.AddCommand(runCmd)
}
