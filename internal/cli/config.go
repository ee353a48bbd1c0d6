package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config mirrors the global flags in a YAML file. Precedence: explicit
// flags beat the config file, which beats built-in defaults.
//
// Example:
//
//	format: json
//	workers: 4
//	strict: true
//	verbose: false
type Config struct {
	Format  string `yaml:"format"`
	Workers int    `yaml:"workers"`
	Strict  bool   `yaml:"strict"`
	Verbose bool   `yaml:"verbose"`
}

// applyConfig loads the optional YAML config and fills in every global
// flag the user did not set explicitly on the command line.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	if opts.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", opts.ConfigPath, err)
	}
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", opts.ConfigPath, err)
	}

	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if cfg.Workers > 0 && !flags.Changed("workers") {
		opts.Workers = cfg.Workers
	}
	if !flags.Changed("strict") {
		opts.Strict = opts.Strict || cfg.Strict
	}
	if !flags.Changed("verbose") {
		opts.Verbose = opts.Verbose || cfg.Verbose
	}

	return nil
}
