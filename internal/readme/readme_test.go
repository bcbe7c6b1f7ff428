package readme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/benchmark"
)

func strPtr(s string) *string {
	return &s
}

func mockTimings() []benchmark.Timing {
	return []benchmark.Timing{
		{Day: 1, Part1: strPtr("10ms"), Part2: strPtr("20ms"), TotalNanos: 3e10},
		{Day: 2, Part1: strPtr("30ms"), Part2: strPtr("40ms"), TotalNanos: 7e10},
		{Day: 4, Part1: strPtr("40ms"), Part2: strPtr("50ms"), TotalNanos: 9e10},
	}
}

func TestUpdate_MarkerMissing(t *testing.T) {
	doc := "# readme"
	out, err := Update(doc, mockTimings(), 190, Options{})

	var markerErr *MarkerError
	require.True(t, errors.As(err, &markerErr))
	assert.Equal(t, 0, markerErr.Count)
	assert.Equal(t, doc, out)
}

func TestUpdate_SingleMarker(t *testing.T) {
	doc := "# readme\n" + Marker
	out, err := Update(doc, mockTimings(), 190, Options{})
	assert.Error(t, err)
	assert.Equal(t, doc, out)
}

func TestUpdate_TooManyMarkers(t *testing.T) {
	doc := fmt.Sprintf("%s %s %s", Marker, Marker, Marker)
	out, err := Update(doc, mockTimings(), 190, Options{})

	var markerErr *MarkerError
	require.True(t, errors.As(err, &markerErr))
	assert.Equal(t, 3, markerErr.Count)
	assert.Equal(t, doc, out)
}

func TestUpdate_EmptyBenchmarks(t *testing.T) {
	doc := fmt.Sprintf("foo\nbar\n%s%s\nbaz", Marker, Marker)
	out, err := Update(doc, mockTimings(), 190, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "## Benchmarks")
}

func TestUpdate_ExistingBenchmarks(t *testing.T) {
	doc := fmt.Sprintf("foo\nbar\n%s%s\nbaz", Marker, Marker)
	once, err := Update(doc, mockTimings(), 190, Options{})
	require.NoError(t, err)
	twice, err := Update(once, mockTimings(), 190, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(twice, Marker))
	assert.Equal(t, 1, strings.Count(twice, "## Benchmarks"))
	assert.Equal(t, once, twice)
}

func TestUpdate_ReplacesPreviousTable(t *testing.T) {
	doc := fmt.Sprintf("foo\nbar\n%s%s\nbaz", Marker, Marker)
	once, err := Update(doc, mockTimings(), 190, Options{})
	require.NoError(t, err)

	updated := []benchmark.Timing{
		{Day: 9, Part1: strPtr("1.5ms"), Part2: strPtr("2.5ms"), TotalNanos: 4e6},
	}
	twice, err := Update(once, updated, 4, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(twice, Marker))
	assert.Equal(t, 1, strings.Count(twice, "## Benchmarks"))
	assert.Contains(t, twice, "| [Day 9](./solutions/09/main.go) | `1.5ms` | `2.5ms` |")
	assert.Contains(t, twice, "**Total: 4.00ms**")
	assert.NotContains(t, twice, "[Day 1]")
	assert.NotContains(t, twice, "[Day 4]")
	assert.NotContains(t, twice, "190.00ms")
	assert.True(t, strings.HasPrefix(twice, "foo\nbar\n"+Marker))
	assert.True(t, strings.HasSuffix(twice, Marker+"\nbaz"))
}

func TestUpdate_Format(t *testing.T) {
	doc := fmt.Sprintf("foo\nbar\n%s\n%s\nbaz", Marker, Marker)
	out, err := Update(doc, mockTimings(), 190, Options{})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"foo",
		"bar",
		"<!--- benchmarking table --->",
		"## Benchmarks",
		"",
		"| Day | Part 1 | Part 2 |",
		"| :---: | :---: | :---:  |",
		"| [Day 1](./solutions/01/main.go) | `10ms` | `20ms` |",
		"| [Day 2](./solutions/02/main.go) | `30ms` | `40ms` |",
		"| [Day 4](./solutions/04/main.go) | `40ms` | `50ms` |",
		"",
		"**Total: 190.00ms**",
		"<!--- benchmarking table --->",
		"baz",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestTable_MissingPartsAndCustomDir(t *testing.T) {
	timings := []benchmark.Timing{{Day: 7, Part1: strPtr("1.5µs")}}
	table := Table(timings, 0.0015, Options{SolutionsDir: "days"})

	assert.Contains(t, table, "| [Day 7](./days/07/main.go) | `1.5µs` | `-` |")
	assert.Contains(t, table, "**Total: 0.00ms**")
}

func TestUpdateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# AoC\n"+Marker+"\n"+Marker+"\n"), 0644))

	require.NoError(t, UpdateFile(path, mockTimings(), 190, Options{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "| [Day 4](./solutions/04/main.go) | `40ms` | `50ms` |")
	assert.True(t, strings.HasSuffix(string(content), Marker+"\n"))
}

func TestUpdateFile_LeavesInvalidReadme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	original := "# AoC without markers\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	assert.Error(t, UpdateFile(path, mockTimings(), 190, Options{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))

	assert.Error(t, UpdateFile(filepath.Join(t.TempDir(), "missing.md"), nil, 0, Options{}))
}
