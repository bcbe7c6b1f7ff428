package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoc/internal/ui"
)

var (
	readLocal bool
	readWidth int
)

var readCmd = &cobra.Command{
	Use:   "read <day>",
	Short: "Show the puzzle description",
	Long: `Show the description of a day's puzzle. By default aoc-cli fetches it;
--local renders the previously downloaded data/puzzles/DD.md instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDayArg(args[0])
		if err != nil {
			return err
		}

		client := newAocClient(appConfig, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if !readLocal {
			if err := client.Check(cmd.Context()); err != nil {
				return err
			}
			return client.Read(cmd.Context(), d)
		}

		content, err := os.ReadFile(client.PuzzlePath(d))
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no puzzle downloaded for day %s, run \"aoc download %s\"", d, d)
			}
			return fmt.Errorf("failed to read puzzle: %w", err)
		}

		rendered, err := ui.RenderMarkdown(string(content), readWidth)
		if err != nil {
			return fmt.Errorf("failed to render puzzle: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVarP(&readLocal, "local", "l", false, "Render the downloaded puzzle instead of fetching it")
	readCmd.Flags().IntVar(&readWidth, "width", 80, "Word wrap width for --local")
}
