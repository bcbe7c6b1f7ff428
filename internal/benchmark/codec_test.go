package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/day"
)

func TestUnmarshal(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		doc := `{ "data": [{ "day": "01", "part_1": "1ms", "part_2": null, "total_nanos": 1000000000 }] }`
		timings, err := Unmarshal([]byte(doc))
		require.NoError(t, err)
		require.Len(t, timings.Data, 1)

		timing := timings.Data[0]
		assert.Equal(t, day.MustNew(1), timing.Day)
		require.NotNil(t, timing.Part1)
		assert.Equal(t, "1ms", *timing.Part1)
		assert.Nil(t, timing.Part2)
		assert.Equal(t, 1e9, timing.TotalNanos)
	})

	t.Run("empty data", func(t *testing.T) {
		timings, err := Unmarshal([]byte(`{ "data": [] }`))
		require.NoError(t, err)
		assert.Empty(t, timings.Data)
	})

	t.Run("sorts by day", func(t *testing.T) {
		doc := `{"data":[
			{"day":"12","part_1":null,"part_2":null,"total_nanos":0},
			{"day":"03","part_1":null,"part_2":null,"total_nanos":0}]}`
		timings, err := Unmarshal([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, day.MustNew(3), timings.Data[0].Day)
	})
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"invalid json", `{"data": [`, ErrInvalidJSON},
		{"not an object", `[1, 2]`, ErrNotObject},
		{"missing data", `{}`, ErrMissingData},
		{"data not array", `{"data": {}}`, ErrDataNotArray},
		{"record not object", `{"data": [1]}`, ErrInvalidTiming},
		{"missing fields", `{"data": [{"day": "01"}]}`, ErrInvalidTiming},
		{"day out of range", `{"data": [{"day": "26", "part_1": null, "part_2": null, "total_nanos": 0}]}`, ErrInvalidTiming},
		{"day not string", `{"data": [{"day": 1, "part_1": null, "part_2": null, "total_nanos": 0}]}`, ErrInvalidTiming},
		{"missing part_1", `{"data": [{"day": "02", "part_2": null, "total_nanos": 0}]}`, ErrInvalidTiming},
		{"part wrong type", `{"data": [{"day": "02", "part_1": 3, "part_2": null, "total_nanos": 0}]}`, ErrInvalidTiming},
		{"total not number", `{"data": [{"day": "02", "part_1": null, "part_2": null, "total_nanos": "0"}]}`, ErrInvalidTiming},
		{"duplicate day", `{"data": [
			{"day": "02", "part_1": null, "part_2": null, "total_nanos": 0},
			{"day": "02", "part_1": null, "part_2": null, "total_nanos": 0}]}`, ErrInvalidTiming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(mockTimings())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"day": "01"`)
	assert.Contains(t, string(data), `"part_2": null`)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, mockTimings(), decoded)
}

func TestMarshalSortsByDay(t *testing.T) {
	in := Timings{Data: []Timing{
		{Day: day.MustNew(5), TotalNanos: 5},
		{Day: day.MustNew(2), TotalNanos: 2},
	}}
	data, err := Marshal(in)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, day.MustNew(2), decoded.Data[0].Day)
	// The input is left untouched.
	assert.Equal(t, day.MustNew(5), in.Data[0].Day)
}
