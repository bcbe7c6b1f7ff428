package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"aoc/internal/benchmark"
	"aoc/internal/config"
	"aoc/internal/day"
	"aoc/internal/history"
	"aoc/internal/readme"
	"aoc/internal/solution"
	"aoc/internal/telemetry"
	"aoc/internal/ui"
)

var (
	timeAll         bool
	timeStore       bool
	timeMetricsFile string
)

var timeCmd = &cobra.Command{
	Use:   "time [day]",
	Short: "Benchmark solutions",
	Long: `Run solutions in release mode with timing enabled and report the mean
duration of each part. Without a day, only days that have no complete entry in
the timings file are run unless --all is given. With --store, results are
merged into the timings file and the README benchmark table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		out := cmd.OutOrStdout()

		store := benchmark.NewFileStore(cfg.TimingsFile)
		stored := store.Load()

		days, err := daysToTime(args, stored, timeAll)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			fmt.Fprintln(out, "All days are benchmarked. Pass --all to run them again.")
			return nil
		}

		metrics := telemetry.NewMetrics()
		runner := &benchmark.MultiRunner{
			Runner:          newRunner(cfg, out, cmd.ErrOrStderr()),
			Out:             out,
			Header:          dayHeader,
			ContinueOnError: cfg.ContinueOnError,
			OnDay: func(o benchmark.Outcome) {
				recordOutcome(metrics, o)
			},
		}

		timings, runErr := runner.Run(cmd.Context(), days, benchmark.RunOptions{Release: true, Timed: true})
		if runErr != nil && !cfg.ContinueOnError {
			return runErr
		}

		printComparison(out, stored, timings)
		recordHistory(cmd.Context(), cfg, timings)

		merged := stored.Merge(timings)
		if timeStore {
			if err := storeTimings(out, cmd.ErrOrStderr(), cfg, store, merged); err != nil {
				return err
			}
		}

		metricsFile := timeMetricsFile
		if metricsFile == "" {
			metricsFile = cfg.MetricsFile
		}
		if metricsFile != "" {
			metrics.SetTotalMillis(merged.TotalMillis())
			if err := metrics.WriteTextfile(metricsFile); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			telemetry.LogDebug("Wrote metrics", "path", metricsFile)
		}

		return runErr
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.Flags().BoolVarP(&timeAll, "all", "a", false, "Benchmark every day, including ones already stored")
	timeCmd.Flags().BoolVar(&timeStore, "store", false, "Store results in the timings file and README")
	timeCmd.Flags().StringVar(&timeMetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
}

// daysToTime resolves which days the time command runs.
func daysToTime(args []string, stored benchmark.Timings, all bool) ([]day.Day, error) {
	if len(args) == 1 {
		d, err := parseDayArg(args[0])
		if err != nil {
			return nil, err
		}
		return []day.Day{d}, nil
	}

	if all {
		return day.All(), nil
	}
	var days []day.Day
	for _, d := range day.All() {
		if !stored.IsDayComplete(d) {
			days = append(days, d)
		}
	}
	return days, nil
}

func recordOutcome(m *telemetry.Metrics, o benchmark.Outcome) {
	switch {
	case o.Err != nil:
		m.TrackDay("failed")
	case o.Timing == nil:
		m.TrackDay("unsolved")
	default:
		if o.Timing.Complete() {
			m.TrackDay("solved")
		} else {
			m.TrackDay("partial")
		}
		for part, s := range map[int]*string{1: o.Timing.Part1, 2: o.Timing.Part2} {
			if s == nil {
				continue
			}
			if nanos, ok := benchmark.ParseDuration(*s); ok {
				m.ObservePart(o.Day.String(), part, nanos)
			}
		}
		m.ObserveDay(o.Day.String(), o.Timing.TotalNanos)
	}
}

// printComparison shows how the new totals moved against stored ones.
func printComparison(w io.Writer, stored, current benchmark.Timings) {
	comparisons := benchmark.Compare(stored, current)
	if len(comparisons) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tSTORED\tCURRENT\tCHANGE")
	for _, c := range comparisons {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.Day,
			solution.FormatDuration(time.Duration(c.Prev.TotalNanos)),
			solution.FormatDuration(time.Duration(c.Curr.TotalNanos)),
			ui.Diff(fmt.Sprintf("%+.2f%%", c.DiffPct), c.DiffPct),
		)
	}
	tw.Flush()
}

// storeTimings persists merged timings and refreshes the README table. A
// README failure is reported without failing the command.
func storeTimings(out, errOut io.Writer, cfg *config.Config, store benchmark.Store, merged benchmark.Timings) error {
	if err := store.Save(merged); err != nil {
		return fmt.Errorf("failed to save timings: %w", err)
	}

	fmt.Fprintln(out)
	opts := readme.Options{SolutionsDir: cfg.SolutionsDir}
	if err := readme.UpdateFile(cfg.ReadmeFile, merged.Data, merged.TotalMillis(), opts); err != nil {
		telemetry.LogError("Failed to update README", err, "path", cfg.ReadmeFile)
		fmt.Fprintln(errOut, ui.Error("Failed to store updated benchmarks."))
		return nil
	}
	fmt.Fprintln(out, ui.Success("Stored updated benchmarks."))
	return nil
}

// recordHistory appends the run to the history store when enabled. Failures
// only produce a warning.
func recordHistory(ctx context.Context, cfg *config.Config, timings benchmark.Timings) {
	if !cfg.History.Enabled || len(timings.Data) == 0 {
		return
	}

	store, err := openHistory(cfg)
	if err != nil {
		telemetry.LogWarn("Could not open history store", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(ctx, history.Run{
		Year:      cfg.Year,
		CreatedAt: now().UTC(),
		Timings:   timings.Data,
	})
	if err != nil {
		telemetry.LogWarn("Could not record benchmark history", "error", err)
		return
	}
	telemetry.LogDebug("Recorded benchmark run", "id", id)
}

// openHistory allows mocking the history backend in tests.
var openHistory = func(cfg *config.Config) (history.Store, error) {
	return history.Open(history.Options{
		Backend: cfg.History.Type,
		DSN:     cfg.History.DSN,
	})
}
