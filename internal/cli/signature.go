package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trinoise/noise"
)

// signatureResult is the JSON payload of the signature command.
type signatureResult struct {
	Base    int    `json:"base"`
	Runs    int    `json:"runs"`
	Period  uint64 `json:"period"`
	Symbols []int  `json:"symbols"`
}

// NewSignatureCommand creates the signature command: one full period of
// symbols for a base.
func NewSignatureCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		base  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "signature",
		Short: "Generate one full signature period for a base",
		Long: `Generate the signature of a base: one symbol (0=Zero, 1=Low, 2=High)
per run of equal digit alignment, across the full period [0, N^N).
Every signature ends in Zero.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSignature(rootOpts, cmd, base, limit)
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", 3, "numeral-system base (2..15)")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many symbols (0 = all)")

	return cmd
}

func runSignature(opts *RootOptions, cmd *cobra.Command, base, limit int) error {
	start := time.Now()
	sig, err := noise.Signature(base, engineOptions(opts)...)
	if err != nil {
		return err
	}
	opts.Log.Debug().
		Int("base", base).
		Int("runs", len(sig)).
		Dur("took", time.Since(start)).
		Msg("signature generated")

	period, err := noise.Period(base)
	if err != nil {
		return err
	}

	shown := sig
	if limit > 0 && limit < len(sig) {
		shown = sig[:limit]
	}
	res := signatureResult{
		Base:    base,
		Runs:    len(sig),
		Period:  period,
		Symbols: make([]int, len(shown)),
	}
	for i, s := range shown {
		res.Symbols[i] = int(s)
	}

	f := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Emit(res, func(w io.Writer) error {
		buf := make([]byte, len(shown))
		for i, s := range shown {
			buf[i] = '0' + byte(s)
		}
		_, err = fmt.Fprintf(w, "%s\n", buf)

		return err
	})
}

// engineOptions translates global flags into noise options.
func engineOptions(opts *RootOptions) []noise.Option {
	var eng []noise.Option
	if opts.Strict {
		eng = append(eng, noise.WithStrict())
	}
	if opts.Workers > 1 {
		eng = append(eng, noise.WithWorkers(opts.Workers))
	}

	return eng
}
