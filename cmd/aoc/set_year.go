package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aoc/internal/config"
)

var setYearCmd = &cobra.Command{
	Use:   "set-year <year>",
	Short: "Set the puzzle year of the repository",
	Long:  `Persist the puzzle year in the config file without touching any solutions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYearArg(args[0])
		if err != nil {
			return err
		}

		if err := config.WriteYear(appConfig.ConfigPath(), year); err != nil {
			return fmt.Errorf("failed to set year: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎄 Set repository to AOC year %d\n", year)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setYearCmd)
}

func parseYearArg(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", arg)
	}
	if err := config.ValidateYear(year, now()); err != nil {
		return 0, err
	}
	return year, nil
}
