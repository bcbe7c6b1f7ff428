package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"aoc/internal/benchmark"
	"aoc/internal/day"
	"aoc/internal/telemetry"
	"aoc/internal/ui"
)

var (
	solveRelease bool
	solveTime    bool
	solveSubmit  int
	solveWatch   bool
)

// solveExecCommand allows mocking "go run" in tests.
var solveExecCommand = exec.CommandContext

// watchDebounce collapses bursts of editor writes into one re-run.
var watchDebounce = 200 * time.Millisecond

var solveCmd = &cobra.Command{
	Use:   "solve <day>",
	Short: "Run a single day's solution",
	Long: `Run the solution of one day against its input with the output of the
solution passed through. --time benchmarks each part, --submit sends the
answer of a part to the puzzle site, and --watch re-runs the solution whenever
its source or input changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDayArg(args[0])
		if err != nil {
			return err
		}
		if solveSubmit != 0 && solveSubmit != 1 && solveSubmit != 2 {
			return fmt.Errorf("--submit must be 1 or 2, got %d", solveSubmit)
		}

		cfg := appConfig
		runner := processRunner(cfg)
		if _, err := os.Stat(runner.SourcePath(d)); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no solution for day %s, create one with \"aoc scaffold %s\"", d, d)
			}
			return err
		}

		run := func() error {
			return solveOnce(cmd.Context(), cmd, runner, d)
		}
		if !solveWatch {
			return run()
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Close()

		for _, dir := range []string{
			filepath.Dir(runner.SourcePath(d)),
			filepath.Join(cfg.DataDir, "inputs"),
		} {
			if err := watcher.Add(dir); err != nil {
				telemetry.LogWarn("Could not watch directory", "path", dir, "error", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted(fmt.Sprintf("Watching day %s for changes. Press Ctrl+C to stop.", d)))
		return watchAndRun(cmd.Context(), watcher, cmd.OutOrStdout(), run)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVarP(&solveRelease, "release", "r", false, "Run with compiler optimizations enabled")
	solveCmd.Flags().BoolVar(&solveTime, "time", false, "Benchmark each part")
	solveCmd.Flags().IntVar(&solveSubmit, "submit", 0, "Submit the answer of part 1 or 2")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "Re-run when the solution or its input changes")
}

func solveOnce(ctx context.Context, cmd *cobra.Command, runner *benchmark.ProcessRunner, d day.Day) error {
	args := runner.Args(d, benchmark.RunOptions{Release: solveRelease, Timed: solveTime})
	if solveSubmit != 0 {
		args = append(args, "--submit", strconv.Itoa(solveSubmit))
	}

	c := solveExecCommand(ctx, "go", args...)
	c.Env = append(c.Environ(), runner.Env()...)
	c.Stdin = cmd.InOrStdin()
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()

	telemetry.LogDebug("Running solution", "day", d.String(), "args", c.Args)
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("day %s exited with status %d", d, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run day %s: %w", d, err)
	}
	return nil
}

// watchAndRun calls run once, then again after every settled burst of file
// changes until ctx is done. Run failures are printed, never returned.
func watchAndRun(ctx context.Context, watcher *fsnotify.Watcher, out io.Writer, run func() error) error {
	runAndReport := func() {
		if err := run(); err != nil {
			fmt.Fprintln(out, ui.Error(err.Error()))
		}
	}
	runAndReport()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				telemetry.LogDebug("File changed", "path", event.Name, "op", event.Op.String())
				settle = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			telemetry.LogWarn("Watcher error", "error", err)
		case <-settle:
			settle = nil
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Muted("Change detected, re-running..."))
			runAndReport()
		}
	}
}
