package solution

import (
	"fmt"
	"os"
	"path/filepath"

	"aoc/internal/day"
)

// DefaultDataDir holds inputs, examples and puzzles.
const DefaultDataDir = "data"

// DataDir honours AOC_DATA_DIR, which the runner sets for child processes.
func DataDir() string {
	if dir := os.Getenv("AOC_DATA_DIR"); dir != "" {
		return dir
	}
	return DefaultDataDir
}

// ReadInput reads data/<folder>/DD.txt, e.g. folder "inputs" or "examples".
func ReadInput(dataDir, folder string, d day.Day) (string, error) {
	return readFile(filepath.Join(dataDir, folder, d.String()+".txt"))
}

// ReadInputPart reads data/<folder>/DD-N.txt for puzzles whose parts use
// different example inputs.
func ReadInputPart(dataDir, folder string, d day.Day, part int) (string, error) {
	return readFile(filepath.Join(dataDir, folder, fmt.Sprintf("%s-%d.txt", d, part)))
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open input file: %w", err)
	}
	return string(data), nil
}
