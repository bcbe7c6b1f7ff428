package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aoc/internal/aoccli"
	"aoc/internal/benchmark"
	"aoc/internal/config"
	"aoc/internal/day"
	"aoc/internal/telemetry"
	"aoc/internal/ui"
)

var exit = os.Exit
var cfgFile string

// appConfig is resolved once per invocation by initConfig.
var appConfig *config.Config

// now is the clock used for year validation and run timestamps.
var now = time.Now

// aocClient is the subset of aoc-cli operations used by commands.
type aocClient interface {
	Check(ctx context.Context) error
	Read(ctx context.Context, d day.Day) error
	Download(ctx context.Context, d day.Day) error
	DownloadInput(ctx context.Context, d day.Day) error
	InputPath(d day.Day) string
	PuzzlePath(d day.Day) string
}

// newAocClient allows mocking aoc-cli in tests.
var newAocClient = func(cfg *config.Config, out, errOut io.Writer) aocClient {
	c := aoccli.NewClient(cfg.AocCommand, cfg.Year, cfg.DataDir)
	c.Stdout = out
	c.Stderr = errOut
	return c
}

// processRunner configures solution processes from cfg. Every command that
// starts a solution goes through it.
func processRunner(cfg *config.Config) *benchmark.ProcessRunner {
	r := benchmark.NewProcessRunner(cfg.SolutionsDir, cfg.DataDir, cfg.Year)
	r.AocCommand = cfg.AocCommand
	return r
}

// newRunner allows mocking solution processes in tests.
var newRunner = func(cfg *config.Config, out, errOut io.Writer) benchmark.Runner {
	r := processRunner(cfg)
	r.Timeout = cfg.Timeout
	r.Stdout = out
	r.Stderr = errOut
	return r
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Scaffold, run and benchmark Advent of Code solutions",
	Long: `aoc manages a repository of daily puzzle solutions written in Go.
It scaffolds solution stubs, downloads inputs through aoc-cli, runs
solutions and keeps a benchmark table in data/timings.json and the README.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.aoc.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int("year", 0, "Puzzle year (overrides config and AOC_YEAR)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Kill a solution that runs longer than this (0 disables)")
	rootCmd.PersistentFlags().Bool("keep-going", false, "Continue with the remaining days when a solution fails")

	bindFlags()
}

// bindFlags lets persistent flags override config file and environment values.
func bindFlags() {
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("year", rootCmd.PersistentFlags().Lookup("year"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("continue_on_error", rootCmd.PersistentFlags().Lookup("keep-going"))
}

// initConfig reads in config file and ENV variables and sets up logging.
func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	ui.ConfigureColor(cfg.NoColor)
	if cfg.ConfigFile != "" {
		telemetry.LogDebug("Using config file", "path", cfg.ConfigFile)
	}

	appConfig = cfg
	return nil
}

// parseDayArg converts a positional argument into a Day.
func parseDayArg(arg string) (day.Day, error) {
	return day.Parse(arg)
}

func dayHeader(d day.Day) string {
	return ui.DayHeader("Day " + d.String())
}
