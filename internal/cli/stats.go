package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trinoise/spectrum"
)

// statsResult is the JSON payload of the stats command. Ratio is
// omitted for the degenerate base 2, where no High symbol occurs.
type statsResult struct {
	Base     int      `json:"base"`
	Runs     uint64   `json:"runs"`
	Zero     uint64   `json:"zero"`
	Low      uint64   `json:"low"`
	High     uint64   `json:"high"`
	Balanced bool     `json:"balanced"`
	Ratio    *float64 `json:"ratio,omitempty"`
}

// NewStatsCommand creates the stats command: symbol frequencies and the
// conjectured laws for a base.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Symbol distribution of a base's full period",
		Long: `Count Zero/Low/High occurrences over one full period and report the
balance law (freq(Zero) == freq(Low), conjectured for base > 2) and the
convergence ratio freq(Zero)/freq(High), which approaches base-2.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(rootOpts, cmd, base)
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", 3, "numeral-system base (2..15)")

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command, base int) error {
	d, err := spectrum.Profile(base, engineOptions(opts)...)
	if err != nil {
		return err
	}
	opts.Log.Debug().Int("base", base).Uint64("runs", d.Runs()).Msg("profile computed")

	res := statsResult{
		Base:     d.Base,
		Runs:     d.Runs(),
		Zero:     d.Zero,
		Low:      d.Low,
		High:     d.High,
		Balanced: d.Balanced(),
	}
	if ratio := d.Ratio(); !math.IsInf(ratio, 1) {
		res.Ratio = &ratio
	}

	f := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Emit(res, func(w io.Writer) error {
		if _, err = fmt.Fprintf(w, "base     %d\nruns     %d\nzero     %d\nlow      %d\nhigh     %d\nbalanced %t\n",
			res.Base, res.Runs, res.Zero, res.Low, res.High, res.Balanced); err != nil {
			return err
		}
		if res.Ratio != nil {
			_, err = fmt.Fprintf(w, "ratio    %.4f\n", *res.Ratio)

			return err
		}

		return nil
	})
}
