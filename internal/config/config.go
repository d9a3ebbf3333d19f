package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pjbench/internal/stats"
)

const (
	DefaultOriginalDir     = "images/progressive/"
	DefaultTruncatedPrefix = "images/truncated_"
)

// DefaultLevels lists the truncation levels used by the benchmark pages.
var DefaultLevels = []string{"3", "4", "7", "8", "10", "11"}

// Config describes the benchmark image layout on disk.
type Config struct {
	// Directory holding the untouched progressive JPEGs
	OriginalDir string `yaml:"original_dir"`
	// Prefix that, followed by a level label, names each variant directory
	TruncatedPrefix string `yaml:"truncated_prefix"`
	// Truncation level labels, in output order
	Levels []string `yaml:"levels"`
}

func Default() *Config {
	return &Config{
		OriginalDir:     DefaultOriginalDir,
		TruncatedPrefix: DefaultTruncatedPrefix,
		Levels:          append([]string(nil), DefaultLevels...),
	}
}

// NewConfigFromFile reads a YAML config. Keys missing from the file keep
// their defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfgBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromBytes(cfgBytes)
}

// NewConfigFromBytes parses a YAML config on top of the defaults.
func NewConfigFromBytes(cfgBytes []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(cfgBytes, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OriginalDir == "" {
		return fmt.Errorf("original_dir must not be empty")
	}
	if c.TruncatedPrefix == "" {
		return fmt.Errorf("truncated_prefix must not be empty")
	}
	seen := make(map[string]bool, len(c.Levels))
	for _, level := range c.Levels {
		if level == "" {
			return fmt.Errorf("levels must not contain empty labels")
		}
		if seen[level] {
			return fmt.Errorf("duplicate level %q", level)
		}
		seen[level] = true
	}
	return nil
}

// StatsOptions maps the config onto the collector's options.
func (c *Config) StatsOptions() stats.Options {
	return stats.Options{
		OriginalDir:     c.OriginalDir,
		TruncatedPrefix: c.TruncatedPrefix,
		Levels:          append([]string(nil), c.Levels...),
	}
}
