package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const keepFile = ".keep"

// YearLayout names the directories that are swapped when switching years.
type YearLayout struct {
	Root         string
	SolutionsDir string
	DataDir      string
}

func (l YearLayout) path(parts ...string) string {
	return filepath.Join(append([]string{l.Root}, parts...)...)
}

// ArchiveDir is where a year's solutions and examples are parked.
func (l YearLayout) ArchiveDir(year int) string {
	return l.path("years", strconv.Itoa(year))
}

// SwitchYear archives the solutions and examples of from under years/<from>,
// clears downloaded inputs and puzzles, and restores years/<to> when it
// exists. Otherwise empty directories are created for the new year.
func SwitchYear(l YearLayout, from, to int, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if from == to {
		fmt.Fprintln(out, "🔔 You are already in the year you want to switch to.")
		return nil
	}

	solutions := l.path(l.SolutionsDir)
	examples := l.path(l.DataDir, "examples")
	archive := l.ArchiveDir(from)

	if _, err := os.Stat(archive); err == nil {
		return fmt.Errorf("archive %s already exists", archive)
	}
	if err := os.MkdirAll(archive, 0755); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	if err := moveIfExists(solutions, filepath.Join(archive, "solutions")); err != nil {
		return err
	}
	if err := moveIfExists(examples, filepath.Join(archive, "examples")); err != nil {
		return err
	}
	for _, dir := range []string{l.path(l.DataDir, "inputs"), l.path(l.DataDir, "puzzles")} {
		if err := cleanFolder(dir); err != nil {
			return err
		}
	}

	source := l.ArchiveDir(to)
	if _, err := os.Stat(source); err == nil {
		if err := moveIfExists(filepath.Join(source, "solutions"), solutions); err != nil {
			return err
		}
		if err := moveIfExists(filepath.Join(source, "examples"), examples); err != nil {
			return err
		}
		if err := os.RemoveAll(source); err != nil {
			return fmt.Errorf("failed to remove %s: %w", source, err)
		}
	}

	for _, dir := range []string{solutions, examples} {
		if err := ensureKeptDir(dir); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "🎄 Switched to year %d.\n", to)
	return nil
}

func moveIfExists(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return nil
}

// cleanFolder removes every regular file in dir except the keep marker.
func cleanFolder(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() || e.Name() == keepFile {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

func ensureKeptDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	keep := filepath.Join(dir, keepFile)
	if _, err := os.Stat(keep); errors.Is(err, os.ErrNotExist) {
		return os.WriteFile(keep, nil, 0644)
	}
	return nil
}
