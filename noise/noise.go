// Package noise provides the trinoise engine: digit alignment, run
// detection, three-valued classification, and full-period signatures.
package noise

import "fmt"

// cancelCheckMask throttles context polling inside hot loops:
// the context is consulted once every 2^16 cursor steps.
const cancelCheckMask = 1<<16 - 1

// AlignmentCount counts the digit positions of v that match the
// identity map in the given base.
//
// v is decomposed into exactly `base` digits by repeated division,
// least-significant digit first. At extraction step k (0-indexed) the
// reference digit is base-1-k, so the identity map 0,1,...,base-1 read
// most-significant-first scores the maximum, which equals base.
//
// Behavior for v ≥ base^base is defined (digits beyond the window are
// silently dropped by the div/mod process) but callers should keep v
// inside one period.
//
// Complexity: O(base). Pure, zero allocations.
func AlignmentCount(v uint64, base int) int {
	b := uint64(base)
	count := 0
	for k := 0; k < base; k++ {
		if v%b == uint64(base-1-k) {
			count++
		}
		v /= b
	}

	return count
}

// RunLength returns the number of immediate successors of v that share
// its alignment count. The count excludes v itself; it stops at the
// first successor whose alignment differs.
//
// Callers must not invoke RunLength where the scan could leave the
// period window [0, base^base); Signature's loop guard ensures this.
//
// Complexity: O(base · runLength) — each probe costs one AlignmentCount.
func RunLength(v uint64, base int) int {
	run := 0
	a := AlignmentCount(v, base)
	for AlignmentCount(v+1, base) == a {
		run++
		v++
	}

	return run
}

// Classify maps a run length to its Symbol:
//
//	0      → Zero
//	base-2 → Low
//	other  → High (expected only base-1; the catch-all folds any other
//	         value here, see the three-value conjecture in doc.go)
//
// Total over all integer run lengths; for base == 2 a zero run length
// matches the Zero arm first.
//
// Complexity: O(1).
func Classify(runLength, base int) Symbol {
	switch runLength {
	case 0:
		return Zero
	case base - 2:
		return Low
	default:
		return High
	}
}

// Signature generates one full period of the noise pattern for the
// given base: one Symbol per run across [0, base^base), plus a final
// unconditional Zero for the wrap boundary, which has no successors
// inside the period.
//
// The cursor loop guard v+1 < end deliberately never evaluates
// RunLength at or beyond end-1: probing past the last representable
// base-digit number would wrap into out-of-window digit extraction.
// The trailing Zero encodes "no successors exist" exactly once, so
// every signature ends in Zero.
//
// Errors:
//   - ErrBaseTooSmall / ErrBaseOverflow — domain violations, rejected
//     before any computation (never a truncated sequence).
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrRunConjecture — strict mode only, see WithStrict.
//   - context errors — when a WithContext context is canceled.
//
// Complexity: O(base · base^base) worst case; Memory: O(runs) for the
// output, plus O(base^base) when WithWorkers(n>1) is used.
func Signature(base int, opts ...Option) ([]Symbol, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	end, err := Period(base)
	if err != nil {
		return nil, err
	}

	if o.Workers > 1 {
		table, tErr := alignmentTable(o.Ctx, base, end, o.Workers)
		if tErr != nil {
			return nil, tErr
		}

		return signatureFromTable(table, base, end, o.Strict)
	}

	// Empirically runs cover about three positions on average, so end/3
	// is a close capacity hint; the slice still grows correctly if the
	// run structure differs.
	sig := make([]Symbol, 0, end/3+1)
	var v, step uint64
	for v+1 < end {
		if step&cancelCheckMask == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}
		step++

		r := RunLength(v, base)
		if o.Strict {
			if err = checkRun(r, base, v); err != nil {
				return nil, err
			}
		}
		v += uint64(r) + 1
		sig = append(sig, Classify(r, base))
	}
	// The end of the period always has no successors.
	sig = append(sig, Zero)

	return sig, nil
}

// checkRun enforces the three-value conjecture for base > 2.
// Base 2 is exempt: its only run length is 0 and the conjecture is
// stated for larger bases.
func checkRun(runLength, base int, v uint64) error {
	if base == MinBase {
		return nil
	}
	if runLength != 0 && runLength != base-2 && runLength != base-1 {
		return fmt.Errorf("%w: got %d at v=%d (base %d)", ErrRunConjecture, runLength, v, base)
	}

	return nil
}
