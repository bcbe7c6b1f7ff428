package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoc/internal/config"
	"aoc/internal/day"
	"aoc/internal/scaffold"
)

var (
	downloadMissing   bool
	downloadOverwrite bool
)

var downloadCmd = &cobra.Command{
	Use:   "download [day]",
	Short: "Download puzzle input and description",
	Long: `Download the input and description of a day through aoc-cli.

With --missing, the input of every scaffolded day whose input file is empty
is downloaded instead. --overwrite downloads them all again. The sync stops
at the first failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if downloadMissing == (len(args) == 1) {
			return fmt.Errorf("pass either a day or --missing")
		}

		cfg := appConfig
		client := newAocClient(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err := client.Check(cmd.Context()); err != nil {
			return err
		}

		if !downloadMissing {
			d, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			return client.Download(cmd.Context(), d)
		}

		days := daysToDownload(cfg, client, downloadOverwrite)
		if len(days) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "All inputs are present.")
			return nil
		}
		for _, d := range days {
			if err := client.DownloadInput(cmd.Context(), d); err != nil {
				return fmt.Errorf("failed to download input for day %s: %w", d, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().BoolVar(&downloadMissing, "missing", false, "Download inputs of scaffolded days that have none")
	downloadCmd.Flags().BoolVar(&downloadOverwrite, "overwrite", false, "With --missing, download inputs that already exist too")
}

// daysToDownload lists scaffolded days that need an input.
func daysToDownload(cfg *config.Config, client aocClient, overwrite bool) []day.Day {
	var days []day.Day
	for _, d := range day.All() {
		opts := scaffold.Options{Day: d, SolutionsDir: cfg.SolutionsDir, DataDir: cfg.DataDir}
		if !scaffold.Exists(opts) {
			continue
		}
		if !overwrite {
			if info, err := os.Stat(client.InputPath(d)); err == nil && info.Size() > 0 {
				continue
			}
		}
		days = append(days, d)
	}
	return days
}
