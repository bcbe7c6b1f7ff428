package main

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"aoc/internal/benchmark"
	"aoc/internal/telemetry"
)

var testRun string

// testExecCommand allows mocking "go test" in tests.
var testExecCommand = exec.CommandContext

var testCmd = &cobra.Command{
	Use:   "test <day>",
	Short: "Run a day's example tests",
	Long:  `Run "go test" for the solution package of a day.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDayArg(args[0])
		if err != nil {
			return err
		}

		cfg := appConfig
		runner := processRunner(cfg)
		pkg := runner.Args(d, benchmark.RunOptions{Release: true})[1]

		goArgs := []string{"test", pkg}
		if testRun != "" {
			goArgs = append(goArgs, "-run", testRun)
		}

		c := testExecCommand(cmd.Context(), "go", goArgs...)
		c.Env = append(c.Environ(), runner.Env()...)
		c.Stdout = cmd.OutOrStdout()
		c.Stderr = cmd.ErrOrStderr()

		telemetry.LogDebug("Testing solution", "day", d.String(), "args", c.Args)
		if err := c.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return fmt.Errorf("tests for day %s failed", d)
			}
			return fmt.Errorf("failed to run tests: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().StringVar(&testRun, "run", "", "Run only tests matching the regular expression")
}
