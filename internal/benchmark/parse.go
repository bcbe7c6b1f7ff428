package benchmark

import (
	"strconv"
	"strings"

	"aoc/internal/day"
	"aoc/internal/telemetry"
)

// SamplesMarker identifies output lines that carry a benchmark duration.
const SamplesMarker = " samples)"

var durationUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"ns", 1},
	{"µs", 1e3},
	{"ms", 1e6},
	{"s", 1e9},
}

// ParseDuration converts a token such as "74.1ms" into nanoseconds. Units are
// tried in the order ns, µs, ms, s. It returns false when the token has no
// numeric prefix before its unit.
func ParseDuration(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	for _, unit := range durationUnits {
		idx := strings.Index(token, unit.suffix)
		if idx < 0 {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(token[:idx]), 64)
		if err != nil {
			return 0, false
		}
		return value * unit.multiplier, true
	}
	return 0, false
}

// LineTiming is the benchmark segment extracted from one output line.
type LineTiming struct {
	Part     int
	Duration string
	Nanos    float64
}

// ParseLine extracts a part duration from a solution output line such as
// "Part 1: 42 (1.2ms @ 830 samples)". The duration is read from the last
// parenthesised segment, so "(", "@" or "samples)" inside the answer cannot
// be mistaken for it. ok is false for lines without the samples marker, for labels
// other than Part 1 or Part 2, and for unparsable durations.
func ParseLine(line string) (LineTiming, bool) {
	markerIdx := strings.LastIndex(line, SamplesMarker)
	if markerIdx < 0 {
		return LineTiming{}, false
	}

	var part int
	label, _, _ := strings.Cut(line, ":")
	switch {
	case strings.Contains(label, "Part 1"):
		part = 1
	case strings.Contains(label, "Part 2"):
		part = 2
	default:
		return LineTiming{}, false
	}

	segment := line[:markerIdx]
	if open := strings.LastIndex(segment, "("); open >= 0 {
		segment = segment[open+1:]
	}
	segment, _, _ = strings.Cut(segment, "@")
	duration := strings.TrimSpace(segment)

	nanos, ok := ParseDuration(duration)
	if !ok {
		telemetry.LogWarn("Could not parse timings from line", "line", line)
		return LineTiming{}, false
	}

	return LineTiming{Part: part, Duration: duration, Nanos: nanos}, true
}

// ParseTimings folds the captured output of a solution run into a Timing.
func ParseTimings(lines []string, d day.Day) Timing {
	timing := Timing{Day: d}
	for _, line := range lines {
		lt, ok := ParseLine(line)
		if !ok {
			continue
		}
		duration := lt.Duration
		switch lt.Part {
		case 1:
			timing.Part1 = &duration
		case 2:
			timing.Part2 = &duration
		}
		timing.TotalNanos += lt.Nanos
	}
	return timing
}
