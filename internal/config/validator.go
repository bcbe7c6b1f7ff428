package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Validate checks configuration values and reports every problem at once.
func (c *Config) Validate() error {
	return c.validateAt(time.Now())
}

func (c *Config) validateAt(now time.Time) error {
	var errors []string

	if c.Year != 0 {
		if err := ValidateYear(c.Year, now); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if c.Timeout < 0 {
		errors = append(errors, fmt.Sprintf("timeout must not be negative, got: %v", c.Timeout))
	}

	for name, value := range map[string]string{
		"data_dir":      c.DataDir,
		"solutions_dir": c.SolutionsDir,
		"timings_file":  c.TimingsFile,
		"aoc_command":   c.AocCommand,
	} {
		if strings.TrimSpace(value) == "" {
			errors = append(errors, fmt.Sprintf("%s must not be empty", name))
		}
	}

	if c.History.Enabled {
		switch c.History.Type {
		case "sqlite", "postgres":
		default:
			errors = append(errors, fmt.Sprintf("history.type must be sqlite or postgres, got: %q", c.History.Type))
		}
		if c.History.DSN == "" {
			errors = append(errors, "history.dsn must be set when history is enabled")
		}
	}

	if len(errors) > 0 {
		// Map iteration order is random; keep messages stable.
		sort.Strings(errors)
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}

