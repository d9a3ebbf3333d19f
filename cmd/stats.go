package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"pjbench/internal/stats"
	"pjbench/internal/tui"
)

var statsFlags layoutFlags

var statsCmd = &cobra.Command{
	Use:   "stats [flags]",
	Short: "Print the sizes of every original and truncated image as a script line",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := statsFlags.options(cmd)
		if err != nil {
			return err
		}

		progress := tui.StartProgress("pjbench stats", progressOutput(cmd, statsFlags.progress))
		report, err := stats.Collect(opts, progress.Updates())
		progress.Stop()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := stats.Encode(&buf, report); err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	statsFlags.register(statsCmd)
	rootCmd.AddCommand(statsCmd)
}
