package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/scaffold"
	"aoc/internal/telemetry"
)

var (
	scaffoldDownload bool
	scaffoldForce    bool
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <day>",
	Short: "Create the solution files for a day",
	Long: `Create solutions/DD/main.go with its test, plus empty input and example
files. Existing solution files are kept unless --force is given or the
overwrite is confirmed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDayArg(args[0])
		if err != nil {
			return err
		}

		cfg := appConfig
		opts := scaffold.Options{
			Day:          d,
			SolutionsDir: cfg.SolutionsDir,
			DataDir:      cfg.DataDir,
			Force:        scaffoldForce,
			Out:          cmd.OutOrStdout(),
		}

		if !opts.Force && scaffold.Exists(opts) {
			overwrite, err := confirm(fmt.Sprintf("Day %s already exists. Overwrite?", d), false)
			if err != nil {
				return err
			}
			if !overwrite {
				return fmt.Errorf("day %s: %w", d, scaffold.ErrExists)
			}
			opts.Force = true
		}

		if _, err := scaffold.Day(opts); err != nil {
			return err
		}

		if scaffoldDownload {
			client := newAocClient(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := client.Check(cmd.Context()); err != nil {
				return err
			}
			if err := client.Download(cmd.Context(), d); err != nil {
				return err
			}
		}
		telemetry.LogDebug("Scaffolded day", "day", d.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().BoolVarP(&scaffoldDownload, "download", "d", false, "Download the input and puzzle after scaffolding")
	scaffoldCmd.Flags().BoolVarP(&scaffoldForce, "force", "f", false, "Overwrite existing solution files")
}
