package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/quantum-sim/sim"
	"github.com/inference-sim/quantum-sim/sim/report"
)

var (
	reportParallel int    // Max concurrent runs; 0 = unbounded
	reportWorkload string // Workload shared by every run
	reportConfig   string // YAML SimConfig supplying the (quantum, context switch) list
	reportHorizon  int64  // Max cycles per run
)

// reportCmd compares every policy over the same workload
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare average turnaround and wait of every policy",
	Run: func(cmd *cobra.Command, args []string) {
		settings := report.DefaultSettings
		if reportConfig != "" {
			cfg, err := sim.LoadSimConfig(reportConfig)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				logrus.Fatalf("Invalid config %s: %v", reportConfig, err)
			}
			if len(cfg.Reports) > 0 {
				settings = cfg.Reports
			}
		}

		// Fail fast on a bad file before any run starts.
		if _, err := openWorkload(reportWorkload); err != nil {
			logrus.Fatalf("Failed to load workload %q: %v", reportWorkload, err)
		}
		factory := func() sim.ArrivalSource {
			src, err := openWorkload(reportWorkload)
			if err != nil {
				panic(err)
			}
			return src
		}

		results, err := report.RunAll(cmd.Context(), report.Configs(settings, reportHorizon), factory,
			report.Options{Parallelism: reportParallel})
		if err != nil {
			logrus.Fatalf("Report failed: %v", err)
		}

		out := cmd.OutOrStdout()
		renderReportTitle(out)
		for _, g := range report.GroupBySetting(results) {
			renderReportGroup(out, g)
		}
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportParallel, "parallel", 0, "Maximum number of concurrent runs (0 = unbounded)")
	reportCmd.Flags().StringVar(&reportWorkload, "workload", "batch", "Workload: batch, or a YAML/CSV file")
	reportCmd.Flags().StringVar(&reportConfig, "config", "", "Path to a YAML config whose reports list replaces the defaults")
	reportCmd.Flags().Int64Var(&reportHorizon, "horizon", 0, "Maximum number of cycles per run (0 = until the workload drains)")

	rootCmd.AddCommand(reportCmd)
}
