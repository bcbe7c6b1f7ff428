// Package readme keeps a benchmark table between two markers in a README.
package readme

import (
	"fmt"
	"os"
	"strings"

	"aoc/internal/benchmark"
	"aoc/internal/day"
)

// Marker delimits the benchmark table. It must appear exactly twice.
const Marker = "<!--- benchmarking table --->"

// DefaultSolutionsDir is the link prefix used for solution sources.
const DefaultSolutionsDir = "./solutions"

// MarkerError reports a README with the wrong number of markers.
type MarkerError struct {
	Count int
}

func (e *MarkerError) Error() string {
	switch {
	case e.Count == 0:
		return fmt.Sprintf("could not find %q in README", Marker)
	case e.Count == 1:
		return fmt.Sprintf("could not find table end position: %q appears only once in README", Marker)
	default:
		return fmt.Sprintf("too many occurrences of %q in README: found %d, expected 2", Marker, e.Count)
	}
}

// Options tune the rendered table.
type Options struct {
	// SolutionsDir prefixes the per-day source links.
	SolutionsDir string
}

// SolutionPath is the link target for a day's solution.
func (o Options) SolutionPath(d day.Day) string {
	dir := o.SolutionsDir
	if dir == "" {
		dir = DefaultSolutionsDir
	}
	if !strings.HasPrefix(dir, "./") && !strings.HasPrefix(dir, "/") {
		dir = "./" + dir
	}
	return strings.TrimSuffix(dir, "/") + "/" + d.String() + "/main.go"
}

// Update replaces the span from the first marker through the second with a
// freshly rendered table. The document is returned unchanged with a
// *MarkerError unless the marker occurs exactly twice.
func Update(doc string, timings []benchmark.Timing, totalMillis float64, opts Options) (string, error) {
	if count := strings.Count(doc, Marker); count != 2 {
		return doc, &MarkerError{Count: count}
	}

	start := strings.Index(doc, Marker)
	end := strings.LastIndex(doc, Marker) + len(Marker)

	return doc[:start] + Table(timings, totalMillis, opts) + doc[end:], nil
}

// Table renders the marker-wrapped benchmark table.
func Table(timings []benchmark.Timing, totalMillis float64, opts Options) string {
	lines := []string{
		Marker,
		"## Benchmarks",
		"",
		"| Day | Part 1 | Part 2 |",
		"| :---: | :---: | :---:  |",
	}

	for _, t := range timings {
		lines = append(lines, fmt.Sprintf("| [Day %d](%s) | `%s` | `%s` |",
			t.Day.Int(), opts.SolutionPath(t.Day), orDash(t.Part1), orDash(t.Part2)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("**Total: %.2fms**", totalMillis),
		Marker,
	)
	return strings.Join(lines, "\n")
}

// UpdateFile rewrites the README at path. The file is left untouched on error.
func UpdateFile(filePath string, timings []benchmark.Timing, totalMillis float64, opts Options) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	updated, err := Update(string(content), timings, totalMillis, opts)
	if err != nil {
		return err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	if err := os.WriteFile(filePath, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
