package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pjbench/internal/config"
	"pjbench/internal/stats"
)

type layoutFlags struct {
	configPath      string
	originalDir     string
	truncatedPrefix string
	levels          []string
	progress        bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file describing the image layout")
	cmd.Flags().StringVar(&f.originalDir, "original", config.DefaultOriginalDir, "directory holding the original progressive JPEGs")
	cmd.Flags().StringVar(&f.truncatedPrefix, "truncated-prefix", config.DefaultTruncatedPrefix, "prefix of the per-level variant directories")
	cmd.Flags().StringSliceVar(&f.levels, "levels", config.DefaultLevels, "truncation level labels, in output order")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "show a progress view on stderr")
}

// options loads the config file, if any, and lets explicitly set flags win.
func (f *layoutFlags) options(cmd *cobra.Command) (stats.Options, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.NewConfigFromFile(f.configPath)
		if err != nil {
			if os.IsNotExist(err) {
				return stats.Options{}, fmt.Errorf("load config: %w", err)
			}
			return stats.Options{}, usageError{err: fmt.Errorf("load config %s: %w", f.configPath, err)}
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("original") {
		cfg.OriginalDir = f.originalDir
	}
	if flags.Changed("truncated-prefix") {
		cfg.TruncatedPrefix = f.truncatedPrefix
	}
	if flags.Changed("levels") {
		cfg.Levels = append([]string(nil), f.levels...)
	}
	if err := cfg.Validate(); err != nil {
		return stats.Options{}, usageError{err: err}
	}

	return cfg.StatsOptions(), nil
}
