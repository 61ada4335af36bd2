package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvonhall/pcsched/boundengine"
	"github.com/arvonhall/pcsched/branchbound"
	"github.com/arvonhall/pcsched/internal/config"
	"github.com/arvonhall/pcsched/internal/rcp"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the exact minimum makespan for a Patterson activity network",
	Example: `  pcsched solve --input jobs.rcp --machines 3
  pcsched solve --input jobs.rcp --machines 3 --timeout 30 --bound fujita`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("input", "", "path to a Patterson .rcp file (required)")
	solveCmd.Flags().Int("machines", 1, "number of identical machines")
	solveCmd.Flags().Int("timeout", -1, "wall-clock search budget in seconds, negative disables")
	solveCmd.Flags().String("bound", "fernandez", "lower bound: fernandez, fujita, none")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(c *cobra.Command, args []string) error {
	cfg, err := config.Load(c.Flags())
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("solve: --input is required")
	}

	mode, err := parseBound(cfg.Bound)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("solve: opening %s: %w", cfg.Input, err)
	}
	defer f.Close()

	log := rootLogger()
	g, err := rcp.Parse(f)
	if err != nil {
		return fmt.Errorf("solve: parsing %s: %w", cfg.Input, err)
	}

	makespan, err := branchbound.Search(g, branchbound.Config{
		Machines:       cfg.Machines,
		TimeoutSeconds: cfg.TimeoutSeconds,
		Mode:           mode,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), makespan)

	return nil
}

func parseBound(s string) (boundengine.Mode, error) {
	switch s {
	case "fernandez":
		return boundengine.Fernandez, nil
	case "fujita":
		return boundengine.FujitaIterative, nil
	case "none":
		return boundengine.None, nil
	default:
		return boundengine.None, fmt.Errorf("solve: unknown bound %q", s)
	}
}
