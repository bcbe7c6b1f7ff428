package benchmark

import (
	"fmt"
	"os"
	"path/filepath"

	"aoc/internal/telemetry"
)

// DefaultTimingsPath is where timings are persisted relative to the project root.
const DefaultTimingsPath = "data/timings.json"

// Store loads and saves the persisted timings.
type Store interface {
	Load() Timings
	Save(t Timings) error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultTimingsPath
	}
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load never fails: an absent or unparsable file yields empty timings.
func (s *FileStore) Load() Timings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			telemetry.LogWarn("Could not read timings file", "path", s.path, "error", err)
		}
		return Timings{}
	}

	timings, err := Unmarshal(data)
	if err != nil {
		telemetry.LogWarn("Ignoring malformed timings file", "path", s.path, "error", err)
		return Timings{}
	}
	return timings
}

func (s *FileStore) Save(t Timings) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := Marshal(t)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timings to %s: %w", s.path, err)
	}
	return nil
}
