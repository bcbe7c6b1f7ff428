package benchmark

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"aoc/internal/day"
	"aoc/internal/telemetry"
)

// Failure classes of a solution run, matched with errors.Is.
var (
	ErrSpawn      = errors.New("solution could not be started")
	ErrExitStatus = errors.New("solution exited with a non-zero status")
	ErrTimeout    = errors.New("solution timed out")
)

// RunError reports a failed solution run for a specific day.
type RunError struct {
	Day  day.Day
	Kind error
	Err  error
}

func (e *RunError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("day %s: %v", e.Day, e.Kind)
	}
	return fmt.Sprintf("day %s: %v: %v", e.Day, e.Kind, e.Err)
}

func (e *RunError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// RunOptions select how a solution is built and run.
type RunOptions struct {
	Release bool
	Timed   bool
}

// Runner defines the interface for running a day's solution.
type Runner interface {
	Run(ctx context.Context, d day.Day, opts RunOptions) ([]string, error)
}

// ProcessRunner runs solutions with "go run", forwarding the child's output
// while capturing its stdout lines.
type ProcessRunner struct {
	SolutionsDir string
	DataDir      string
	Year         int
	AocCommand   string
	Timeout      time.Duration
	Stdout       io.Writer
	Stderr       io.Writer

	// command builds the child process; overridden in tests.
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewProcessRunner(solutionsDir, dataDir string, year int) *ProcessRunner {
	return &ProcessRunner{
		SolutionsDir: solutionsDir,
		DataDir:      dataDir,
		Year:         year,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		command:      exec.CommandContext,
	}
}

// SourcePath is the entry file of a day's solution.
func (r *ProcessRunner) SourcePath(d day.Day) string {
	return filepath.Join(r.SolutionsDir, d.String(), "main.go")
}

// Args returns the go tool arguments that run a day's solution.
func (r *ProcessRunner) Args(d day.Day, opts RunOptions) []string {
	args := []string{"run"}
	if !opts.Release {
		args = append(args, "-gcflags=all=-N -l")
	}
	pkg := filepath.ToSlash(filepath.Join(r.SolutionsDir, d.String()))
	if !filepath.IsAbs(pkg) {
		pkg = "./" + pkg
	}
	args = append(args, pkg)
	if opts.Timed {
		args = append(args, "--time")
	}
	return args
}

// Run executes the solution of d and returns its stdout lines. A day
// without a solution yields no lines and no error.
func (r *ProcessRunner) Run(ctx context.Context, d day.Day, opts RunOptions) ([]string, error) {
	if _, err := os.Stat(r.SourcePath(d)); err != nil {
		if os.IsNotExist(err) {
			telemetry.LogDebug("No solution source", "day", d.String(), "path", r.SourcePath(d))
			return nil, nil
		}
		return nil, &RunError{Day: d, Kind: ErrSpawn, Err: err}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	newCommand := r.command
	if newCommand == nil {
		newCommand = exec.CommandContext
	}
	cmd := newCommand(ctx, "go", r.Args(d, opts)...)
	cmd.Env = append(os.Environ(), r.Env()...)
	configureProcessGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &RunError{Day: d, Kind: ErrSpawn, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &RunError{Day: d, Kind: ErrSpawn, Err: err}
	}

	telemetry.LogDebug("Running solution", "day", d.String(), "args", cmd.Args)
	if err := cmd.Start(); err != nil {
		return nil, &RunError{Day: d, Kind: ErrSpawn, Err: err}
	}

	var (
		mu    sync.Mutex
		lines []string
		g     errgroup.Group
	)

	g.Go(func() error {
		return scanLines(stdout, func(line string) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(r.out(), line)
			lines = append(lines, line)
		})
	})
	g.Go(func() error {
		return scanLines(stderr, func(line string) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(r.errOut(), line)
		})
	})

	drainErr := g.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() == context.DeadlineExceeded {
		return lines, &RunError{Day: d, Kind: ErrTimeout, Err: fmt.Errorf("exceeded %s", r.Timeout)}
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return lines, &RunError{Day: d, Kind: ErrExitStatus, Err: waitErr}
		}
		return lines, &RunError{Day: d, Kind: ErrSpawn, Err: waitErr}
	}
	if drainErr != nil {
		return lines, &RunError{Day: d, Kind: ErrSpawn, Err: drainErr}
	}
	return lines, nil
}

// Env returns the variables that hand the resolved configuration to a
// solution process.
func (r *ProcessRunner) Env() []string {
	var env []string
	if r.DataDir != "" {
		env = append(env, "AOC_DATA_DIR="+r.DataDir)
	}
	if r.AocCommand != "" {
		env = append(env, "AOC_AOC_COMMAND="+r.AocCommand)
	}
	if r.Year != 0 {
		env = append(env, "AOC_YEAR="+strconv.Itoa(r.Year))
	}
	return env
}

func (r *ProcessRunner) out() io.Writer {
	if r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

func (r *ProcessRunner) errOut() io.Writer {
	if r.Stderr == nil {
		return io.Discard
	}
	return r.Stderr
}

func scanLines(rd io.Reader, handle func(string)) error {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		handle(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		// Keep draining so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, rd)
		return err
	}
	return nil
}
