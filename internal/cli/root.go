// Package cli implements the trinoise command-line tool: a thin caller
// around the noise, spectrum and wheel packages for generating,
// profiling and rendering signatures.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json"
	ConfigPath string
	Workers    int
	Strict     bool

	// Log is configured in PersistentPreRunE; diagnostics go to stderr
	// so JSON output on stdout stays parseable.
	Log zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the trinoise CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "trinoise",
		Short: "Deterministic three-valued noise from number theory",
		Long: `trinoise generates a deterministic, periodic, three-valued noise
sequence from digit alignment against the identity map in a chosen base.

Every natural in [0, N^N) is read as N digits in base N; runs of equal
alignment collapse into the symbols Zero, Low and High, one per run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Log = newLogger(cmd.ErrOrStderr(), opts.Verbose)

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "optional YAML config file")
	cmd.PersistentFlags().IntVar(&opts.Workers, "workers", 1, "goroutines for the parallel alignment precompute")
	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "abort on run lengths violating the three-value conjecture")

	// Subcommands
	cmd.AddCommand(NewSignatureCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

// newLogger builds a console zerolog writer; --verbose lowers the level
// to debug.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}

	return false
}
