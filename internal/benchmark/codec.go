package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"aoc/internal/day"
)

// Decoding errors for the timings document.
var (
	ErrInvalidJSON   = errors.New("not valid JSON file")
	ErrNotObject     = errors.New("expected JSON document to be an object")
	ErrMissingData   = errors.New("expected JSON document to have key `data`")
	ErrDataNotArray  = errors.New("expected `json.data` to be an array")
	ErrInvalidTiming = errors.New("invalid timing record")
)

// Marshal renders timings as the persisted JSON document, sorted by day.
func Marshal(t Timings) ([]byte, error) {
	data := make([]Timing, len(t.Data))
	copy(data, t.Data)
	sortByDay(data)

	out, err := json.MarshalIndent(Timings{Data: data}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timings: %w", err)
	}
	return append(out, '\n'), nil
}

// Unmarshal strictly decodes a timings document. Every record must carry a
// valid day, both part keys (null or string) and a numeric total.
func Unmarshal(doc []byte) (Timings, error) {
	if !gjson.ValidBytes(doc) {
		return Timings{}, ErrInvalidJSON
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return Timings{}, ErrNotObject
	}

	data := root.Get("data")
	if !data.Exists() {
		return Timings{}, ErrMissingData
	}
	if !data.IsArray() {
		return Timings{}, ErrDataNotArray
	}

	var timings Timings
	seen := make(map[day.Day]bool)
	for i, record := range data.Array() {
		timing, err := decodeTiming(record)
		if err != nil {
			return Timings{}, fmt.Errorf("%w at index %d: %v", ErrInvalidTiming, i, err)
		}
		if seen[timing.Day] {
			return Timings{}, fmt.Errorf("%w at index %d: duplicate day %s", ErrInvalidTiming, i, timing.Day)
		}
		seen[timing.Day] = true
		timings.Data = append(timings.Data, timing)
	}

	sortByDay(timings.Data)
	return timings, nil
}

func decodeTiming(record gjson.Result) (Timing, error) {
	if !record.IsObject() {
		return Timing{}, errors.New("expected timing to be a JSON object")
	}

	dayField := record.Get("day")
	if dayField.Type != gjson.String {
		return Timing{}, errors.New("expected timing.day to be a day string")
	}
	d, err := day.Parse(dayField.Str)
	if err != nil {
		return Timing{}, fmt.Errorf("expected timing.day to be a day string: %w", err)
	}

	part1, err := decodePart(record, "part_1")
	if err != nil {
		return Timing{}, err
	}
	part2, err := decodePart(record, "part_2")
	if err != nil {
		return Timing{}, err
	}

	total := record.Get("total_nanos")
	if total.Type != gjson.Number {
		return Timing{}, errors.New("expected timing.total_nanos to be a number")
	}

	return Timing{Day: d, Part1: part1, Part2: part2, TotalNanos: total.Num}, nil
}

func decodePart(record gjson.Result, key string) (*string, error) {
	field := record.Get(key)
	switch {
	case !field.Exists():
		return nil, fmt.Errorf("expected timing.%s to be null or string", key)
	case field.Type == gjson.Null:
		return nil, nil
	case field.Type == gjson.String:
		s := field.Str
		return &s, nil
	default:
		return nil, fmt.Errorf("expected timing.%s to be null or string", key)
	}
}
