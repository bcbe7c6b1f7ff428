package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/day"
)

// TestRunnerHelperProcess is not a real test. It stands in for a solution
// binary when re-executed by newHelperRunner.
func TestRunnerHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(2)
	}

	switch args[1] {
	case "solve":
		fmt.Fprintln(os.Stderr, "debug: reading input")
		fmt.Println("Part 1: 42 (1.5ms @ 666 samples)")
		fmt.Println("Part 2: ✖")
	case "env":
		fmt.Printf("data=%s year=%s command=%s\n", os.Getenv("AOC_DATA_DIR"), os.Getenv("AOC_YEAR"), os.Getenv("AOC_AOC_COMMAND"))
	case "flood":
		for i := 0; i < 20000; i++ {
			fmt.Printf("line %d %s\n", i, strings.Repeat("x", 32))
			fmt.Fprintf(os.Stderr, "err %d\n", i)
		}
	case "fail":
		fmt.Println("Part 1: 1 (1ms @ 10 samples)")
		os.Exit(3)
	case "hang":
		time.Sleep(30 * time.Second)
	}
}

func newHelperRunner(t *testing.T, mode string) (*ProcessRunner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")

	dir := t.TempDir()
	src := filepath.Join(dir, "01", "main.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("package main\n"), 0644))

	var stdout, stderr bytes.Buffer
	r := NewProcessRunner(dir, "testdata", 2023)
	r.Stdout = &stdout
	r.Stderr = &stderr
	r.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, os.Args[0], "-test.run=TestRunnerHelperProcess", "--", mode)
	}
	return r, &stdout, &stderr
}

func TestProcessRunner_CapturesStdout(t *testing.T) {
	r, stdout, stderr := newHelperRunner(t, "solve")

	lines, err := r.Run(context.Background(), day.MustNew(1), RunOptions{Timed: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Part 1: 42 (1.5ms @ 666 samples)", "Part 2: ✖"}, lines)
	assert.Contains(t, stdout.String(), "Part 1: 42")
	assert.Contains(t, stderr.String(), "debug: reading input")
	assert.NotContains(t, stdout.String(), "debug: reading input")
}

func TestProcessRunner_PassesConfigThroughEnv(t *testing.T) {
	r, _, _ := newHelperRunner(t, "env")
	r.AocCommand = "/opt/bin/aoc"

	lines, err := r.Run(context.Background(), day.MustNew(1), RunOptions{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "data=testdata year=2023 command=/opt/bin/aoc", lines[0])
}

func TestProcessRunner_Env(t *testing.T) {
	r := NewProcessRunner("solutions", "data", 2024)
	r.AocCommand = "aoc"
	assert.Equal(t, []string{"AOC_DATA_DIR=data", "AOC_AOC_COMMAND=aoc", "AOC_YEAR=2024"}, r.Env())

	assert.Empty(t, NewProcessRunner("solutions", "", 0).Env())
}

func TestProcessRunner_DrainsLargeOutput(t *testing.T) {
	r, _, stderr := newHelperRunner(t, "flood")

	lines, err := r.Run(context.Background(), day.MustNew(1), RunOptions{})
	require.NoError(t, err)
	assert.Len(t, lines, 20000)
	assert.Equal(t, "line 0 "+strings.Repeat("x", 32), lines[0])
	assert.Contains(t, stderr.String(), "err 19999")
}

func TestProcessRunner_NonZeroExit(t *testing.T) {
	r, _, _ := newHelperRunner(t, "fail")

	lines, err := r.Run(context.Background(), day.MustNew(1), RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExitStatus)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, day.MustNew(1), runErr.Day)
	assert.Len(t, lines, 1)
}

func TestProcessRunner_Timeout(t *testing.T) {
	r, _, _ := newHelperRunner(t, "hang")
	r.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := r.Run(context.Background(), day.MustNew(1), RunOptions{})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestProcessRunner_MissingSolution(t *testing.T) {
	r, _, _ := newHelperRunner(t, "solve")
	called := false
	r.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		called = true
		return exec.CommandContext(ctx, "false")
	}

	lines, err := r.Run(context.Background(), day.MustNew(2), RunOptions{})
	assert.NoError(t, err)
	assert.Empty(t, lines)
	assert.False(t, called)
}

func TestProcessRunner_SpawnFailure(t *testing.T) {
	r, _, _ := newHelperRunner(t, "solve")
	r.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, filepath.Join(t.TempDir(), "does-not-exist"))
	}

	_, err := r.Run(context.Background(), day.MustNew(1), RunOptions{})
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestProcessRunner_Args(t *testing.T) {
	r := NewProcessRunner("solutions", "data", 0)
	d := day.MustNew(5)

	assert.Equal(t, []string{"run", "-gcflags=all=-N -l", "./solutions/05"}, r.Args(d, RunOptions{}))
	assert.Equal(t, []string{"run", "./solutions/05", "--time"}, r.Args(d, RunOptions{Release: true, Timed: true}))
	assert.Equal(t, filepath.Join("solutions", "05", "main.go"), r.SourcePath(d))
}
