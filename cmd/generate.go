package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"pjbench/internal/stats"
	"pjbench/internal/tui"
)

var generateFlags layoutFlags

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Build every truncated_<level> directory from the original images",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := generateFlags.options(cmd)
		if err != nil {
			return err
		}
		for _, level := range opts.Levels {
			if _, err := stats.ParseLevel(level); err != nil {
				return usageError{err: err}
			}
		}

		progress := tui.StartProgress("pjbench generate", progressOutput(cmd, generateFlags.progress))
		results, err := stats.Generate(opts, progress.Updates())
		progress.Stop()
		if err != nil {
			return err
		}

		var written int
		for _, res := range results {
			written += res.Selected
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary([]tui.SummaryRow{
			{Label: "Levels", Value: strconv.Itoa(len(opts.Levels))},
			{Label: "Files written", Value: strconv.Itoa(len(results))},
			{Label: "Bytes written", Value: strconv.Itoa(written)},
		}))
		return nil
	},
}

// progressOutput picks where the progress view draws; stdout stays reserved
// for command output.
func progressOutput(cmd *cobra.Command, enabled bool) io.Writer {
	if !enabled {
		return nil
	}
	return cmd.ErrOrStderr()
}

func init() {
	generateFlags.register(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
