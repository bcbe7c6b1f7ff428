// Package scaffold creates solution stubs and data files for a day.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"aoc/internal/day"
)

// ErrExists is returned when a solution file already exists and overwriting
// was not requested.
var ErrExists = errors.New("file already exists")

var mainTemplate = template.Must(template.New("main.go").Parse(`package main

import (
	"aoc/internal/day"
	"aoc/internal/solution"
)

func partOne(input string) (any, bool) {
	return nil, false
}

func partTwo(input string) (any, bool) {
	return nil, false
}

func main() {
	solution.Main(day.MustNew({{.Day}}), partOne, partTwo)
}
`))

var testTemplate = template.Must(template.New("main_test.go").Parse(`package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/day"
	"aoc/internal/solution"
)

func readExample(t *testing.T) string {
	t.Helper()
	input, err := solution.ReadInput("{{.DataDir}}", "examples", day.MustNew({{.Day}}))
	require.NoError(t, err)
	return input
}

func TestPartOne(t *testing.T) {
	_, ok := partOne(readExample(t))
	assert.False(t, ok)
}

func TestPartTwo(t *testing.T) {
	_, ok := partTwo(readExample(t))
	assert.False(t, ok)
}
`))

// Options locate the files created for a day.
type Options struct {
	Day          day.Day
	SolutionsDir string
	DataDir      string
	// Force overwrites existing solution files.
	Force bool
	Out   io.Writer
}

type templateData struct {
	Day     int
	DataDir string
}

// Paths lists the files Day creates.
type Paths struct {
	Main    string
	Test    string
	Input   string
	Example string
}

func (o Options) Paths() Paths {
	dir := filepath.Join(o.SolutionsDir, o.Day.String())
	return Paths{
		Main:    filepath.Join(dir, "main.go"),
		Test:    filepath.Join(dir, "main_test.go"),
		Input:   filepath.Join(o.DataDir, "inputs", o.Day.String()+".txt"),
		Example: filepath.Join(o.DataDir, "examples", o.Day.String()+".txt"),
	}
}

// Day writes the solution stub and its test, then makes sure the input and
// example files exist. Existing data files are never truncated.
func Day(opts Options) (Paths, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	paths := opts.Paths()

	// Tests run from the solution directory, so the data dir is relative to it.
	testDataDir, err := filepath.Rel(filepath.Dir(paths.Main), opts.DataDir)
	if err != nil {
		testDataDir = opts.DataDir
	}
	data := templateData{Day: opts.Day.Int(), DataDir: filepath.ToSlash(testDataDir)}

	if err := writeTemplate(paths.Main, mainTemplate, data, opts.Force); err != nil {
		return paths, fmt.Errorf("failed to create module file: %w", err)
	}
	fmt.Fprintf(out, "Created module file %q\n", paths.Main)

	if err := writeTemplate(paths.Test, testTemplate, data, opts.Force); err != nil {
		return paths, fmt.Errorf("failed to create test file: %w", err)
	}
	fmt.Fprintf(out, "Created test file %q\n", paths.Test)

	if err := touch(paths.Input); err != nil {
		return paths, fmt.Errorf("failed to create input file: %w", err)
	}
	fmt.Fprintf(out, "Created empty input file %q\n", paths.Input)

	if err := touch(paths.Example); err != nil {
		return paths, fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(out, "Created empty example file %q\n", paths.Example)

	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "🎄 Type `aoc solve %s` to run your solution.\n", opts.Day)
	return paths, nil
}

// Exists reports whether the solution of a day was already scaffolded.
func Exists(opts Options) bool {
	_, err := os.Stat(opts.Paths().Main)
	return err == nil
}

func writeTemplate(path string, tmpl *template.Template, data templateData, force bool) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return err
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return err
	}
	return f.Close()
}

func touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
