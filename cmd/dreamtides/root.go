// Command dreamtides is the Dreamtides engine's CLI: ad hoc simulation,
// card-text parsing, and search-AI benchmarking, replacing the teacher's
// flag-based cmd/mtgsim/main.go with a cobra command tree (spec.md §1.X).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamtides/dtengine/internal/config"
	"github.com/dreamtides/dtengine/internal/logger"
)

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "dreamtides",
	Short: "Dreamtides rules engine CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load environment config: %v\n", err)
		}
		level := cfg.LogFilter
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logger.SetLogLevel(logger.ParseLogLevel(level))
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log", "", "log level (META, GAME, PLAYER, CARD); overrides DREAMTIDES_LOG")
	rootCmd.AddCommand(simulateCmd, parseCmd, searchBenchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
