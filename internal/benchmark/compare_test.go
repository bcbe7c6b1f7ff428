package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc/internal/day"
)

func TestCompare(t *testing.T) {
	prev := Timings{Data: []Timing{
		{Day: 1, TotalNanos: 100},
		{Day: 2, TotalNanos: 200},
		{Day: 5, TotalNanos: 0},
	}}
	curr := Timings{Data: []Timing{
		{Day: 1, TotalNanos: 110}, // 10% slower
		{Day: 3, TotalNanos: 300}, // New
		{Day: 5, TotalNanos: 10},
	}}

	comps := Compare(prev, curr)

	assert.Len(t, comps, 2)

	c := comps[0]
	assert.Equal(t, day.MustNew(1), c.Day)
	assert.InDelta(t, 10.0, c.DiffPct, 0.01)
	assert.Equal(t, "Day 01: +10.00%", c.String())

	assert.Equal(t, 0.0, comps[1].DiffPct)
}
