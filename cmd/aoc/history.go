package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"aoc/internal/solution"
)

var (
	historyLimit int
	historyDay   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded benchmark runs",
	Long: `List benchmark runs recorded by "aoc time" when history is enabled.
With --day, list how a single day's timings changed across runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(appConfig)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer tw.Flush()

		if historyDay != "" {
			d, err := parseDayArg(historyDay)
			if err != nil {
				return err
			}
			entries, err := store.DayHistory(cmd.Context(), d, historyLimit)
			if err != nil {
				return fmt.Errorf("failed to load history for day %s: %w", d, err)
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No recorded runs for day %s.\n", d)
				return nil
			}
			fmt.Fprintln(tw, "RUN\tDATE\tPART 1\tPART 2\tTOTAL")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					e.RunID,
					e.CreatedAt.Local().Format(time.DateTime),
					valueOrDash(e.Timing.Part1),
					valueOrDash(e.Timing.Part2),
					solution.FormatDuration(time.Duration(e.Timing.TotalNanos)),
				)
			}
			return nil
		}

		runs, err := store.Runs(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
			return nil
		}
		fmt.Fprintln(tw, "RUN\tDATE\tYEAR\tDAYS\tTOTAL")
		for _, r := range runs {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.2fms\n",
				r.ID,
				r.CreatedAt.Local().Format(time.DateTime),
				r.Year,
				len(r.Timings),
				r.TotalMillis(),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&historyDay, "day", "", "Show the history of a single day")
}

func valueOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
