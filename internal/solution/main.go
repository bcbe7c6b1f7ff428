package solution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"aoc/internal/aoccli"
	"aoc/internal/day"
)

// Submitter sends answers to the puzzle website.
type Submitter interface {
	Check(ctx context.Context) error
	Submit(ctx context.Context, d day.Day, part int, answer string) error
}

// Options control a solution run.
type Options struct {
	Timed bool
	// Submit is the part whose answer is submitted; 0 submits nothing.
	Submit    int
	Out       io.Writer
	Submitter Submitter
}

// Solve runs both parts against input and submits an answer when asked.
func (s Solution) Solve(ctx context.Context, input string, opts Options) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	for part := 1; part <= 2; part++ {
		answer, ok := RunPart(out, part, s.Part(part), input, opts.Timed)
		if !ok || opts.Submit != part {
			continue
		}
		if opts.Submitter == nil {
			return errors.New("no submitter configured")
		}
		if err := opts.Submitter.Check(ctx); err != nil {
			return fmt.Errorf("command \"aoc\" not found or not callable, install aoc-cli to submit answers: %w", err)
		}
		fmt.Fprintln(out, "Submitting result via aoc-cli...")
		if err := opts.Submitter.Submit(ctx, s.Day, part, answer); err != nil {
			return fmt.Errorf("failed to submit part %d: %w", part, err)
		}
	}
	return nil
}

// Run parses solution arguments (--time, --submit N), reads the day's input
// and solves the registered solution of d.
func Run(ctx context.Context, d day.Day, args []string, out io.Writer) error {
	sol, ok := Lookup(d)
	if !ok {
		return fmt.Errorf("no solution registered for day %s (registered: %s)", d, registeredDays())
	}

	flags := pflag.NewFlagSet("day "+d.String(), pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	timed := flags.Bool("time", false, "Benchmark each part")
	submit := flags.Int("submit", 0, "Submit the answer of the given part")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("unexpected command-line input, expected [--time] [--submit <part>]: %w", err)
	}
	if *submit < 0 || *submit > 2 {
		return fmt.Errorf("invalid part %d for --submit", *submit)
	}

	dataDir := DataDir()
	input, err := ReadInput(dataDir, "inputs", d)
	if err != nil {
		return err
	}

	year, _ := strconv.Atoi(os.Getenv("AOC_YEAR"))
	client := aoccli.NewClient(os.Getenv("AOC_AOC_COMMAND"), year, dataDir)

	return sol.Solve(ctx, input, Options{
		Timed:     *timed,
		Submit:    *submit,
		Out:       out,
		Submitter: client,
	})
}

// Main is the entry point of a day's solution program.
func Main(d day.Day, partOne, partTwo Solver) {
	if err := Register(d, partOne, partTwo); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := Run(context.Background(), d, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
