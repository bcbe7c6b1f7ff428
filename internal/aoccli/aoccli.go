// Package aoccli wraps the external "aoc" command line used to download
// puzzles and inputs and to submit answers.
package aoccli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"aoc/internal/day"
	"aoc/internal/telemetry"
)

// DefaultCommand is the binary name of aoc-cli.
const DefaultCommand = "aoc"

// ErrorKind classifies aoc-cli failures.
type ErrorKind int

const (
	NotFound ErrorKind = iota
	NotCallable
	BadExitStatus
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "aoc-cli is not present in environment."
	case NotCallable:
		return "aoc-cli could not be called."
	case BadExitStatus:
		return "aoc-cli exited with a non-zero status."
	case IoError:
		return "could not write output files to file system."
	default:
		return "unknown aoc-cli error."
	}
}

// Error is returned by every Client operation.
type Error struct {
	Kind ErrorKind
	// ExitCode is set for BadExitStatus.
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, &aoccli.Error{Kind: aoccli.NotFound}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err is an aoc-cli error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Client invokes aoc-cli. Output of the tool is streamed to Stdout and Stderr.
type Client struct {
	Command string
	Year    int
	DataDir string
	Stdout  io.Writer
	Stderr  io.Writer

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewClient(command string, year int, dataDir string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return &Client{
		Command: command,
		Year:    year,
		DataDir: dataDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		command: exec.CommandContext,
	}
}

// InputPath is where the puzzle input of d is stored.
func (c *Client) InputPath(d day.Day) string {
	return filepath.Join(c.DataDir, "inputs", d.String()+".txt")
}

// PuzzlePath is where the puzzle description of d is stored.
func (c *Client) PuzzlePath(d day.Day) string {
	return filepath.Join(c.DataDir, "puzzles", d.String()+".md")
}

// Check verifies that aoc-cli can be executed.
func (c *Client) Check(ctx context.Context) error {
	err := c.newCommand(ctx, "-V").Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &Error{Kind: NotFound, Err: err}
	}
	return nil
}

// Read prints the puzzle description of d, refreshing the local puzzle file.
func (c *Client) Read(ctx context.Context, d day.Day) error {
	if err := c.ensureDirs(); err != nil {
		return err
	}
	return c.call(ctx, c.BuildArgs("read", d, "--description-only", "--puzzle-file", c.PuzzlePath(d)))
}

// Download fetches the input and description of d, overwriting local copies.
func (c *Client) Download(ctx context.Context, d day.Day) error {
	if err := c.ensureDirs(); err != nil {
		return err
	}
	args := c.BuildArgs("download", d,
		"--overwrite",
		"--input-file", c.InputPath(d),
		"--puzzle-file", c.PuzzlePath(d),
	)
	if err := c.call(ctx, args); err != nil {
		return err
	}

	out := c.out()
	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "🎄 Successfully wrote input to %q.\n", c.InputPath(d))
	fmt.Fprintf(out, "🎄 Successfully wrote puzzle to %q.\n", c.PuzzlePath(d))
	return nil
}

// DownloadInput fetches only the puzzle input of d.
func (c *Client) DownloadInput(ctx context.Context, d day.Day) error {
	if err := c.ensureDirs(); err != nil {
		return err
	}
	args := c.BuildArgs("download", d, "--input-only", "--overwrite", "--input-file", c.InputPath(d))
	if err := c.call(ctx, args); err != nil {
		return err
	}
	fmt.Fprintf(c.out(), "🎄 Successfully wrote input to %q.\n", c.InputPath(d))
	return nil
}

// Submit sends an answer for one part of d.
func (c *Client) Submit(ctx context.Context, d day.Day, part int, answer string) error {
	// aoc-cli expects the part and answer after the subcommand.
	args := append(c.BuildArgs("submit", d), strconv.Itoa(part), answer)
	return c.call(ctx, args)
}

// BuildArgs places extra arguments first, then the optional year, then the
// day and the subcommand.
func (c *Client) BuildArgs(subcommand string, d day.Day, extra ...string) []string {
	args := append([]string{}, extra...)
	if c.Year != 0 {
		args = append(args, "--year", strconv.Itoa(c.Year))
	}
	return append(args, "--day", strconv.Itoa(d.Int()), subcommand)
}

func (c *Client) call(ctx context.Context, args []string) error {
	telemetry.LogDebug("Calling aoc-cli", "command", c.Command, "args", args)

	cmd := c.newCommand(ctx, args...)
	cmd.Stdout = c.out()
	cmd.Stderr = c.errOut()
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		return &Error{Kind: NotCallable, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Error{Kind: BadExitStatus, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &Error{Kind: NotCallable, Err: err}
	}
	return nil
}

func (c *Client) ensureDirs() error {
	for _, dir := range []string{filepath.Join(c.DataDir, "inputs"), filepath.Join(c.DataDir, "puzzles")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Kind: IoError, Err: err}
		}
	}
	return nil
}

func (c *Client) newCommand(ctx context.Context, args ...string) *exec.Cmd {
	newCommand := c.command
	if newCommand == nil {
		newCommand = exec.CommandContext
	}
	return newCommand(ctx, c.Command, args...)
}

func (c *Client) out() io.Writer {
	if c.Stdout == nil {
		return io.Discard
	}
	return c.Stdout
}

func (c *Client) errOut() io.Writer {
	if c.Stderr == nil {
		return io.Discard
	}
	return c.Stderr
}
