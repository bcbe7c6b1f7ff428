package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read from the working directory when no --config is given.
const DefaultConfigFile = ".aoc.toml"

// Config is the resolved configuration, passed explicitly to every command.
type Config struct {
	// Year is the puzzle year; 0 lets aoc-cli pick its default.
	Year int

	DataDir      string
	SolutionsDir string
	TimingsFile  string
	ReadmeFile   string
	AocCommand   string

	// Timeout bounds a single solution run; 0 disables it.
	Timeout         time.Duration
	ContinueOnError bool

	Verbose     bool
	NoColor     bool
	LogFile     string
	MetricsFile string

	History HistoryConfig

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string
}

// HistoryConfig selects where benchmark runs are recorded.
type HistoryConfig struct {
	Enabled bool
	Type    string
	DSN     string
}

func setDefaults() {
	viper.SetDefault("year", 0)
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("solutions_dir", "solutions")
	viper.SetDefault("timings_file", "data/timings.json")
	viper.SetDefault("readme_file", "README.md")
	viper.SetDefault("aoc_command", "aoc")
	viper.SetDefault("timeout", "0s")
	viper.SetDefault("continue_on_error", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_color", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.type", "sqlite")
	viper.SetDefault("history.dsn", "data/history.db")
}

// Load initializes viper from .env, the config file and AOC_* environment
// variables, and returns the resolved configuration.
func Load(cfgFile string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(strings.TrimSuffix(DefaultConfigFile, ".toml"))
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("AOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(), nil
}

// FromViper snapshots the current viper state.
func FromViper() *Config {
	return &Config{
		Year:            viper.GetInt("year"),
		DataDir:         viper.GetString("data_dir"),
		SolutionsDir:    viper.GetString("solutions_dir"),
		TimingsFile:     viper.GetString("timings_file"),
		ReadmeFile:      viper.GetString("readme_file"),
		AocCommand:      viper.GetString("aoc_command"),
		Timeout:         viper.GetDuration("timeout"),
		ContinueOnError: viper.GetBool("continue_on_error"),
		Verbose:         viper.GetBool("verbose"),
		NoColor:         viper.GetBool("no_color"),
		LogFile:         viper.GetString("log_file"),
		MetricsFile:     viper.GetString("metrics_file"),
		History: HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Type:    viper.GetString("history.type"),
			DSN:     viper.GetString("history.dsn"),
		},
		ConfigFile: viper.ConfigFileUsed(),
	}
}

// ConfigPath is where set-year writes: the loaded file, or the default.
func (c *Config) ConfigPath() string {
	if c.ConfigFile != "" {
		return c.ConfigFile
	}
	return DefaultConfigFile
}
