package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/framesim/framesim/sim/workload"
)

var (
	generateOut string
	generateCfg = workload.DefaultGeneratorConfig()
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a reproducible random process list",
	Run: func(cmd *cobra.Command, args []string) {
		procs, err := workload.Generate(generateCfg)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		if err := workload.NewLoader().SaveProcesses(context.Background(), generateOut, procs); err != nil {
			logrus.Fatalf("Failed to save processes: %v", err)
		}
		logrus.Infof("Wrote %d processes to %s", len(procs), generateOut)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "processes.yaml", "Destination file (any afs URL)")
	generateCmd.Flags().Int64Var(&generateCfg.Seed, "seed", generateCfg.Seed, "Seed for random process generation")
	generateCmd.Flags().IntVar(&generateCfg.Count, "count", generateCfg.Count, "Number of processes")
	generateCmd.Flags().IntVar(&generateCfg.MaxStart, "max-start", generateCfg.MaxStart, "Latest start frame")
	generateCmd.Flags().IntVar(&generateCfg.MinDuration, "min-duration", generateCfg.MinDuration, "Shortest duration in frames")
	generateCmd.Flags().IntVar(&generateCfg.MaxDuration, "max-duration", generateCfg.MaxDuration, "Longest duration in frames")
	generateCmd.Flags().IntVar(&generateCfg.MinSize, "min-size", generateCfg.MinSize, "Smallest memory demand")
	generateCmd.Flags().IntVar(&generateCfg.MaxSize, "max-size", generateCfg.MaxSize, "Largest memory demand")
	generateCmd.Flags().IntVar(&generateCfg.MaxPriority, "max-priority", generateCfg.MaxPriority, "Highest priority value")
	rootCmd.AddCommand(generateCmd)
}
