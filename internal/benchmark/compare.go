package benchmark

import (
	"fmt"

	"aoc/internal/day"
)

// Comparison is the change of one day's total between two sets of timings.
type Comparison struct {
	Day     day.Day
	DiffPct float64 // Percentage change of TotalNanos
	Prev    Timing
	Curr    Timing
}

// Compare returns a comparison for every day present in both prev and curr.
func Compare(prev, curr Timings) []Comparison {
	prevByDay := make(map[day.Day]Timing, len(prev.Data))
	for _, t := range prev.Data {
		prevByDay[t.Day] = t
	}

	var comparisons []Comparison
	for _, c := range curr.Data {
		p, ok := prevByDay[c.Day]
		if !ok {
			continue
		}
		comp := Comparison{Day: c.Day, Prev: p, Curr: c}
		if p.TotalNanos > 0 {
			comp.DiffPct = (c.TotalNanos - p.TotalNanos) / p.TotalNanos * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	return fmt.Sprintf("Day %s: %+.2f%%", c.Day, c.DiffPct)
}
