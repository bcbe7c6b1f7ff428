package benchmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"aoc/internal/day"
	"aoc/internal/telemetry"
)

// Outcome is the result of one day within a multi-day run.
type Outcome struct {
	Day    day.Day
	Timing *Timing
	Err    error
}

// MultiRunner runs several days one after another and collects their timings.
type MultiRunner struct {
	Runner Runner
	Out    io.Writer
	// Header renders the per-day heading; defaults to plain "Day DD".
	Header func(d day.Day) string
	// ContinueOnError keeps going after a failed day instead of aborting.
	ContinueOnError bool
	// OnDay is notified after each day completes.
	OnDay func(Outcome)
}

// Run executes days in ascending order. By default the first failure aborts
// the batch and is returned with the timings collected so far.
func (m *MultiRunner) Run(ctx context.Context, days []day.Day, opts RunOptions) (Timings, error) {
	ordered := make([]day.Day, len(days))
	copy(ordered, days)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	out := m.Out
	if out == nil {
		out = io.Discard
	}

	var (
		timings Timings
		errs    []error
	)
	for i, d := range ordered {
		if i > 0 && ordered[i-1] == d {
			continue
		}
		if err := ctx.Err(); err != nil {
			return timings, err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, m.header(d))
		fmt.Fprintln(out, "------")

		lines, err := m.Runner.Run(ctx, d, opts)
		if err != nil {
			m.notify(Outcome{Day: d, Err: err})
			if !m.ContinueOnError {
				return timings, err
			}
			telemetry.LogError("Solution failed, continuing", err, "day", d.String())
			fmt.Fprintf(out, "Failed: %v\n", err)
			errs = append(errs, err)
			continue
		}

		if len(lines) == 0 {
			fmt.Fprintln(out, "No solution.")
			m.notify(Outcome{Day: d})
			continue
		}

		timing := ParseTimings(lines, d)
		timings.Data = append(timings.Data, timing)
		m.notify(Outcome{Day: d, Timing: &timing})
	}

	return timings, errors.Join(errs...)
}

func (m *MultiRunner) header(d day.Day) string {
	if m.Header != nil {
		return m.Header(d)
	}
	return "Day " + d.String()
}

func (m *MultiRunner) notify(o Outcome) {
	if m.OnDay != nil {
		m.OnDay(o)
	}
}
