package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"pjbench/internal/scan"
	"pjbench/internal/tui"
	"pjbench/pkg/imgutil"
)

var (
	truncateQuiet   bool
	truncateSummary bool
)

var truncateCmd = &cobra.Command{
	Use:   "truncate [flags] <input> <output> <scan_count>",
	Short: "Cut a JPEG before its nth-from-last start-of-scan marker",
	Args:  usageArgs(cobra.ExactArgs(3)),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := args[0], args[1]
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 {
			return fmt.Errorf("scan_count %q: %w", args[2], scan.ErrInvalidScanCount)
		}

		if kind, sniffErr := imgutil.SniffFile(input); sniffErr == nil && kind != imgutil.KindJPEG {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderWarning(fmt.Sprintf("%s does not look like a JPEG (%s)", input, kind)))
		}

		res, err := scan.TruncateFile(input, output, n)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !truncateQuiet {
			printDiagnostics(out, res)
		}
		if truncateSummary {
			fmt.Fprintln(out, tui.RenderSummary([]tui.SummaryRow{
				{Label: "SOS markers found", Value: strconv.Itoa(len(res.Offsets))},
				{Label: "Scans removed", Value: strconv.Itoa(n)},
				{Label: "Bytes written", Value: strconv.Itoa(res.Written)},
				{Label: "Output", Value: output},
			}))
		}
		return nil
	},
}

func printDiagnostics(w io.Writer, res scan.Result) {
	fmt.Fprintln(w, scan.FormatOffsets(res.Offsets))
	fmt.Fprintln(w, res.Selected)
}

func init() {
	truncateCmd.Flags().BoolVarP(&truncateQuiet, "quiet", "q", false, "do not print the offset diagnostics")
	truncateCmd.Flags().BoolVar(&truncateSummary, "summary", false, "print a summary table after truncating")

	rootCmd.AddCommand(truncateCmd)
}
