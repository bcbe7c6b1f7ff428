package solution

import (
	"fmt"
	"io"
	"math"
	"time"

	"aoc/internal/ui"
)

const (
	minIterations = 10
	maxIterations = 10000
	benchBudget   = time.Second
	// Baselines below this are treated as this long.
	minBaseline = 10 * time.Nanosecond
)

// Iterations returns how many timed repetitions fit into roughly one second
// given a single-run baseline, clamped to [10, 10000].
func Iterations(baseline time.Duration) int {
	if baseline < minBaseline {
		baseline = minBaseline
	}
	n := int64(benchBudget / baseline)
	switch {
	case n < minIterations:
		return minIterations
	case n > maxIterations:
		return maxIterations
	default:
		return int(n)
	}
}

// Bench runs work Iterations(baseline) times and returns the mean duration
// and the sample count. Progress is written to w.
func Bench(w io.Writer, work func(), baseline time.Duration) (time.Duration, int) {
	fmt.Fprintf(w, " > %s", ui.Note("benching"))

	iterations := Iterations(baseline)
	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		work()
		total += time.Since(start)
	}
	return total / time.Duration(iterations), iterations
}

// RunTimed runs work once for a baseline and hands the result to hook. When
// timed it then benchmarks work and reports the mean; otherwise the baseline
// is returned with a sample count of one.
func RunTimed[T any](w io.Writer, work func() T, timed bool, hook func(T)) (T, time.Duration, int) {
	start := time.Now()
	result := work()
	baseline := time.Since(start)

	if hook != nil {
		hook(result)
	}

	if !timed {
		return result, baseline, 1
	}

	mean, samples := Bench(w, func() { work() }, baseline)
	return result, mean, samples
}

var durationUnits = []struct {
	size   time.Duration
	suffix string
}{
	{time.Nanosecond, "ns"},
	{time.Microsecond, "µs"},
	{time.Millisecond, "ms"},
	{time.Second, "s"},
}

// FormatDuration renders a duration with one decimal and the largest fitting
// unit out of s, ms, µs and ns, e.g. "74.1ms". The value is rounded before the
// unit is chosen, so 999.96µs becomes "1.0ms" rather than "1000.0µs".
func FormatDuration(d time.Duration) string {
	for i, unit := range durationUnits {
		value := math.Round(float64(d)/float64(unit.size)*10) / 10
		if value < 1000 || i == len(durationUnits)-1 {
			return fmt.Sprintf("%.1f%s", value, unit.suffix)
		}
	}
	return ""
}

// FormatTiming renders the parenthesised timing suffix of a part line.
func FormatTiming(d time.Duration, samples int) string {
	if samples == 1 {
		return fmt.Sprintf(" (%s)", FormatDuration(d))
	}
	return fmt.Sprintf(" (%s @ %d samples)", FormatDuration(d), samples)
}
