package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/framesim/framesim/sim"
	"github.com/framesim/framesim/sim/trace"
	"github.com/framesim/framesim/sim/workload"
)

var (
	// CLI flags shared by both simulations
	processesPath string // Process list location (local path or afs URL)
	logLevel      string // Log verbosity level
	horizon       int    // Max frames to simulate
	traceFile     string // OpenTelemetry span output file ("" disables tracing)

	// Memory simulation flags
	poolSize int // Total memory pool units

	// CPU simulation flags
	quantum      int    // Round-robin time slice in frames
	outputFormat string // State table format: text or yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "framesim",
	Short: "Frame-stepped simulator for memory allocation and CPU scheduling",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// memoryCmd runs the best-fit memory allocation simulation
var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Run the best-fit memory allocation simulation",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		shutdown := setupTracing(traceFile)
		defer shutdown()

		procs, err := workload.LoadProcesses(ctx, processesPath, sim.StrategyMemory)
		if err != nil {
			logrus.Fatalf("Failed to load processes: %v", err)
		}
		s, err := sim.NewMemorySimulator(procs, sim.NewMemoryConfig(poolSize, horizon))
		if err != nil {
			logrus.Fatalf("Failed to build simulator: %v", err)
		}
		logrus.Infof("Starting memory simulation with %d processes, pool=%d units", len(procs), poolSize)

		out := cmd.OutOrStdout()
		mm := s.Manager.(*sim.MemoryManager)
		err = s.Run(ctx, func(frame int, res sim.FrameResult) {
			printMemoryFrame(out, frame, res, mm)
		})
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		sim.ComputeMetrics(s.Processes, s.StateTable()).Print(out)
		printTraceSummary(out, trace.Summarize(s.Trace))
		logrus.Info("Simulation complete.")
	},
}

// cpuCmd runs the round-robin scheduling simulation
var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "Run the round-robin CPU scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		shutdown := setupTracing(traceFile)
		defer shutdown()

		if outputFormat != "text" && outputFormat != "yaml" {
			logrus.Fatalf("Unknown output format %q; valid: text, yaml", outputFormat)
		}
		procs, err := workload.LoadProcesses(ctx, processesPath, sim.StrategyCPU)
		if err != nil {
			logrus.Fatalf("Failed to load processes: %v", err)
		}
		s, err := sim.NewCPUSimulator(procs, sim.NewSchedulerConfig(quantum, horizon))
		if err != nil {
			logrus.Fatalf("Failed to build simulator: %v", err)
		}
		logrus.Infof("Starting round-robin simulation with %d processes, quantum=%d", len(procs), quantum)

		if err := s.Run(ctx, nil); err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		out := cmd.OutOrStdout()
		if err := printStateTable(out, s.Processes, s.StateTable(), outputFormat); err != nil {
			logrus.Fatalf("Failed to write state table: %v", err)
		}
		if outputFormat == "text" {
			sim.ComputeMetrics(s.Processes, s.StateTable()).Print(out)
			printTraceSummary(out, trace.Summarize(s.Trace))
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&processesPath, "processes", "processes.json", "Process list file (YAML or JSON, any afs URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&horizon, "horizon", sim.NoHorizon, "Max frames to simulate")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "", "Write OpenTelemetry spans to this file (empty = disabled)")

	memoryCmd.Flags().IntVar(&poolSize, "pool-size", sim.DefaultPoolSize, "Total memory pool size in units")

	cpuCmd.Flags().IntVar(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time slice in frames")
	cpuCmd.Flags().StringVar(&outputFormat, "format", "text", "State table format (text, yaml)")

	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(cpuCmd)
}
