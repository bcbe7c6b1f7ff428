package main

import (
	"github.com/spf13/cobra"

	"aoc/internal/benchmark"
	"aoc/internal/day"
)

var allRelease bool

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every day's solution",
	Long: `Run the solutions of days 01 through 25 one after another. Days
without a solution are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &benchmark.MultiRunner{
			Runner:          newRunner(appConfig, cmd.OutOrStdout(), cmd.ErrOrStderr()),
			Out:             cmd.OutOrStdout(),
			Header:          dayHeader,
			ContinueOnError: appConfig.ContinueOnError,
		}
		_, err := runner.Run(cmd.Context(), day.All(), benchmark.RunOptions{Release: allRelease})
		return err
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
	allCmd.Flags().BoolVarP(&allRelease, "release", "r", false, "Run with compiler optimizations enabled")
}
