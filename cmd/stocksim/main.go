package main

import (
	"log"
	"os"

	"stocksim/cmd"
	"stocksim/internal/domain"
	"stocksim/internal/export"
	"stocksim/internal/simulation"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stocksim",
	Short: "GBM stock price simulator",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, cfg, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		return apiHandler.StartApi(cfg.Port)
	},
}

var (
	simInitialPrice float64
	simDrift        float64
	simVolatility   float64
	simHorizon      float64
	simSteps        int
	simNumPaths     int
	simSeed         int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run one simulation batch and write CSV to stdout",
	RunE: func(c *cobra.Command, args []string) error {
		params := domain.SimulationParams{
			InitialPrice: simInitialPrice,
			Drift:        simDrift,
			Volatility:   simVolatility,
			Horizon:      simHorizon,
			Steps:        simSteps,
			NumPaths:     simNumPaths,
		}
		if c.Flags().Changed("seed") {
			params.Seed = &simSeed
		}

		paths, err := simulation.NewPathGenerator().Generate(params)
		if err != nil {
			return err
		}

		return export.WritePathsCSV(os.Stdout, paths)
	},
}

func init() {
	simulateCmd.Flags().Float64Var(&simInitialPrice, "initial-price", 100, "starting price")
	simulateCmd.Flags().Float64Var(&simDrift, "drift", 0.05, "expected return rate")
	simulateCmd.Flags().Float64Var(&simVolatility, "volatility", 0.2, "risk coefficient")
	simulateCmd.Flags().Float64Var(&simHorizon, "horizon", 1.0, "time span in years")
	simulateCmd.Flags().IntVar(&simSteps, "steps", 252, "number of time increments")
	simulateCmd.Flags().IntVar(&simNumPaths, "paths", 1, "number of trajectories")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "deterministic seed")
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
