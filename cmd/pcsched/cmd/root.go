package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arvonhall/pcsched/internal/obs"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pcsched",
	Short: "Exact precedence-constrained multiprocessor scheduling",
	Long: `pcsched computes the exact minimum makespan for a set of tasks with
precedence constraints running on identical machines, via depth-first
branch-and-bound.`,
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.AddCommand(solveCmd)
}

func rootLogger() obs.Logger {
	return obs.New("cli", logLevel)
}
