package benchmark

import (
	"sort"

	"aoc/internal/day"
)

// Timing is the benchmark result of one day. Part durations are kept as the
// strings the solution printed; TotalNanos is the sum of the parsed parts.
type Timing struct {
	Day        day.Day `json:"day"`
	Part1      *string `json:"part_1"`
	Part2      *string `json:"part_2"`
	TotalNanos float64 `json:"total_nanos"`
}

// Complete reports whether both parts have a recorded duration.
func (t Timing) Complete() bool {
	return t.Part1 != nil && t.Part2 != nil
}

// Timings is a set of Timing records with at most one record per day.
type Timings struct {
	Data []Timing `json:"data"`
}

// Merge returns the union of t and other keyed by day. Records from other
// win on conflict. The result is sorted by day.
func (t Timings) Merge(other Timings) Timings {
	byDay := make(map[day.Day]Timing, len(t.Data)+len(other.Data))
	for _, timing := range t.Data {
		byDay[timing.Day] = timing
	}
	for _, timing := range other.Data {
		byDay[timing.Day] = timing
	}

	data := make([]Timing, 0, len(byDay))
	for _, timing := range byDay {
		data = append(data, timing)
	}
	sortByDay(data)
	return Timings{Data: data}
}

func (t Timings) Get(d day.Day) (Timing, bool) {
	for _, timing := range t.Data {
		if timing.Day == d {
			return timing, true
		}
	}
	return Timing{}, false
}

// IsDayComplete reports whether d has a record with both parts present.
func (t Timings) IsDayComplete(d day.Day) bool {
	timing, ok := t.Get(d)
	return ok && timing.Complete()
}

// TotalMillis sums all records.
func (t Timings) TotalMillis() float64 {
	var total float64
	for _, timing := range t.Data {
		total += timing.TotalNanos
	}
	return total / 1e6
}

func sortByDay(data []Timing) {
	sort.Slice(data, func(i, j int) bool {
		return data[i].Day < data[j].Day
	})
}
