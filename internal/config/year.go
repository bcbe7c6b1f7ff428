package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FirstYear is the first puzzle year.
const FirstYear = 2015

// The puzzle server releases puzzles at midnight UTC-5.
var serverZone = time.FixedZone("UTC-5", -5*60*60)

// LastYear is the most recent year with puzzles: the current server year
// during December, the previous one otherwise.
func LastYear(now time.Time) int {
	server := now.In(serverZone)
	if server.Month() == time.December {
		return server.Year()
	}
	return server.Year() - 1
}

// ValidateYear accepts years from FirstYear through LastYear(now).
func ValidateYear(year int, now time.Time) error {
	last := LastYear(now)
	if year < FirstYear || year > last {
		return fmt.Errorf("expecting a year number between %d and %d, got: %d", FirstYear, last, year)
	}
	return nil
}

// WriteYear stores year in the TOML config file at path, keeping other keys.
func WriteYear(path string, year int) error {
	values := map[string]any{}
	if _, err := toml.DecodeFile(path, &values); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	values["year"] = year

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(values); err != nil {
		return fmt.Errorf("failed to encode config %s: %w", path, err)
	}
	return f.Close()
}
