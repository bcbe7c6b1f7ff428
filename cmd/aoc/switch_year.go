package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/config"
	"aoc/internal/scaffold"
)

var switchYearYes bool

var switchYearCmd = &cobra.Command{
	Use:   "switch-year <year>",
	Short: "Archive the current year and switch to another",
	Long: `Move the solutions and examples of the configured year to years/<year>,
clear downloaded inputs and puzzles, and restore the target year's archive
when there is one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := parseYearArg(args[0])
		if err != nil {
			return err
		}

		cfg := appConfig
		if cfg.Year == 0 {
			return fmt.Errorf("no year configured, run \"aoc set-year\" first")
		}

		if !switchYearYes && cfg.Year != to {
			ok, err := confirm(fmt.Sprintf("Archive %d and switch to %d?", cfg.Year, to), true)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
				return nil
			}
		}

		layout := scaffold.YearLayout{
			Root:         ".",
			SolutionsDir: cfg.SolutionsDir,
			DataDir:      cfg.DataDir,
		}
		if err := scaffold.SwitchYear(layout, cfg.Year, to, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to switch year: %w", err)
		}
		if cfg.Year == to {
			return nil
		}

		if err := config.WriteYear(cfg.ConfigPath(), to); err != nil {
			return fmt.Errorf("failed to set year: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎄 Set repository to AOC year %d\n", to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchYearCmd)
	switchYearCmd.Flags().BoolVarP(&switchYearYes, "yes", "y", false, "Do not ask for confirmation")
}
