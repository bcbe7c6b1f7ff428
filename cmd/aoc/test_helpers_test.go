package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"aoc/internal/benchmark"
	"aoc/internal/config"
	"aoc/internal/day"
	"aoc/internal/ui"
)

func init() {
	ui.DisableColor()
}

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	viper.Reset()
	bindFlags()

	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				// This is an expected exit, don't re-panic
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	// Mock Stdin to avoid hanging on interactive prompts
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupWorkspace switches to an empty repository layout.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, sub := range []string{"solutions", "data/inputs", "data/examples", "data/puzzles"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func fixedNow(t *testing.T) {
	t.Helper()
	old := now
	now = func() time.Time { return time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = old })
}

// MockRunner returns canned solution output per day.
type MockRunner struct {
	mu    sync.Mutex
	Lines map[day.Day][]string
	Errs  map[day.Day]error
	Calls []day.Day
	Opts  []benchmark.RunOptions
}

func (m *MockRunner) Run(ctx context.Context, d day.Day, opts benchmark.RunOptions) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, d)
	m.Opts = append(m.Opts, opts)
	return m.Lines[d], m.Errs[d]
}

func useMockRunner(t *testing.T, m *MockRunner) {
	t.Helper()
	old := newRunner
	newRunner = func(cfg *config.Config, out, errOut io.Writer) benchmark.Runner { return m }
	t.Cleanup(func() { newRunner = old })
}

// MockAocClient records aoc-cli operations.
type MockAocClient struct {
	DataDir  string
	CheckErr error
	FailDay  day.Day
	Calls    []string
}

func (m *MockAocClient) Check(ctx context.Context) error {
	m.Calls = append(m.Calls, "check")
	return m.CheckErr
}

func (m *MockAocClient) Read(ctx context.Context, d day.Day) error {
	m.Calls = append(m.Calls, "read "+d.String())
	return nil
}

func (m *MockAocClient) Download(ctx context.Context, d day.Day) error {
	m.Calls = append(m.Calls, "download "+d.String())
	return nil
}

func (m *MockAocClient) DownloadInput(ctx context.Context, d day.Day) error {
	m.Calls = append(m.Calls, "input "+d.String())
	if d == m.FailDay {
		return fmt.Errorf("mock download failure")
	}
	return nil
}

func (m *MockAocClient) InputPath(d day.Day) string {
	return filepath.Join(m.DataDir, "inputs", d.String()+".txt")
}

func (m *MockAocClient) PuzzlePath(d day.Day) string {
	return filepath.Join(m.DataDir, "puzzles", d.String()+".md")
}

func useMockAocClient(t *testing.T, m *MockAocClient) {
	t.Helper()
	if m.DataDir == "" {
		m.DataDir = "data"
	}
	old := newAocClient
	newAocClient = func(cfg *config.Config, out, errOut io.Writer) aocClient { return m }
	t.Cleanup(func() { newAocClient = old })
}
