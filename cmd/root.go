package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"pjbench/internal/scan"
)

const (
	exitFault         = 1
	exitUsage         = 2
	exitMissingFile   = 3
	exitNotEnoughScan = 4
)

var rootCmd = &cobra.Command{
	Use:           "pjbench",
	Short:         "pjbench - tooling for the progressive JPEG benchmark",
	Long:          "pjbench truncates progressive JPEGs at scan boundaries and summarizes the sizes of the resulting variants.",
	Args:          usageArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// usageError marks bad invocations so they exit with exitUsage.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usageArgs tags positional argument failures, including unknown
// subcommands reaching the root, as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage), errors.Is(err, scan.ErrInvalidScanCount):
		return exitUsage
	case errors.Is(err, scan.ErrNotEnoughScans):
		return exitNotEnoughScan
	case errors.Is(err, fs.ErrNotExist):
		return exitMissingFile
	default:
		return exitFault
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})
}
