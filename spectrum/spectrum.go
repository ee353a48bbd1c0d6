package spectrum

import (
	"math"

	"github.com/katalvlaran/trinoise/noise"
)

// Distribution holds the symbol tally of one full signature period.
type Distribution struct {
	// Base is the numeral-system radix the signature was generated for.
	Base int
	// Zero, Low and High count occurrences of each symbol.
	Zero, Low, High uint64
}

// Runs returns the total number of runs in the period, which equals the
// signature length.
func (d Distribution) Runs() uint64 {
	return d.Zero + d.Low + d.High
}

// Balanced reports whether Zero and Low occur equally often. This holds
// for every base greater than 2 (conjecture); base 2 is degenerate and
// produces only Zero.
func (d Distribution) Balanced() bool {
	return d.Zero == d.Low
}

// Ratio returns freq(Zero)/freq(High). The ratio converges rapidly to
// base-2 as the base goes to infinity (conjecture). Returns +Inf when
// no High symbol occurs, as in base 2.
func (d Distribution) Ratio() float64 {
	if d.High == 0 {
		return math.Inf(1)
	}

	return float64(d.Zero) / float64(d.High)
}

// Count folds a signature into its Distribution. Symbols outside
// {Zero, Low, High} are impossible by construction and ignored.
//
// Complexity: O(len(sig)).
func Count(sig []noise.Symbol, base int) Distribution {
	d := Distribution{Base: base}
	for _, s := range sig {
		switch s {
		case noise.Zero:
			d.Zero++
		case noise.Low:
			d.Low++
		case noise.High:
			d.High++
		}
	}

	return d
}

// Profile generates the signature for base and returns its
// Distribution. Options are forwarded to noise.Signature untouched, so
// cancellation, strict checking and parallel precompute all apply.
func Profile(base int, opts ...noise.Option) (Distribution, error) {
	sig, err := noise.Signature(base, opts...)
	if err != nil {
		return Distribution{}, err
	}

	return Count(sig, base), nil
}
