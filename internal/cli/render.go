package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trinoise/wheel"
)

// symbolGlyphs maps symbol values to an ASCII density ramp:
// Zero is empty, Low medium, High dense.
var symbolGlyphs = [3]byte{' ', '.', '#'}

// renderResult is the JSON payload of the render command: rows of
// display levels {0, base-2, base-1}.
type renderResult struct {
	Base   int     `json:"base"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Offset uint64  `json:"offset"`
	Rows   [][]int `json:"rows"`
}

// NewRenderCommand creates the render command: a rectangular noise
// raster read cyclically off the compiled wheel.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		base   int
		width  int
		height int
		offset uint64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a rectangular noise raster for a base",
		Long: `Render width×height cells of noise, reading the compiled signature
cyclically starting at the given offset. Text output uses an ASCII ramp
(space=Zero, dot=Low, hash=High); JSON output carries the display
levels {0, base-2, base-1}.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(rootOpts, cmd, base, width, height, offset)
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", 3, "numeral-system base (2..15)")
	cmd.Flags().IntVar(&width, "width", 64, "raster width in cells")
	cmd.Flags().IntVar(&height, "height", 16, "raster height in cells")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "starting position on the wheel")

	return cmd
}

func runRender(opts *RootOptions, cmd *cobra.Command, base, width, height int, offset uint64) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("render area must be positive, got %dx%d", width, height)
	}

	w, err := wheel.Compile(base, engineOptions(opts)...)
	if err != nil {
		return err
	}
	opts.Log.Debug().Int("base", base).Uint64("wheel_len", w.Len()).Msg("wheel compiled")

	res := renderResult{Base: base, Width: width, Height: height, Offset: offset, Rows: make([][]int, height)}
	for y := 0; y < height; y++ {
		res.Rows[y] = w.Levels(offset+uint64(y)*uint64(width), width)
	}

	f := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Emit(res, func(out io.Writer) error {
		line := make([]byte, width+1)
		line[width] = '\n'
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				line[x] = symbolGlyphs[w.At(offset+uint64(y)*uint64(width)+uint64(x))]
			}
			if _, err = out.Write(line); err != nil {
				return err
			}
		}

		return nil
	})
}
