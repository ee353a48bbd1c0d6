// Package noise - parallel alignment precompute.
//
// Alignment is a pure function of v alone, so a bulk map of
// AlignmentCount over a contiguous range is embarrassingly parallel.
// Signature can trade O(base^base) memory for wall-clock speed by
// computing the full table first and then deriving runs from it with a
// single sequential scan.
package noise

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// maxTableBytes caps the alignment table at 4 GiB (one byte per
// position). Base 10 already needs 10^10 ≈ 9.3 GiB, so in practice the
// table path serves bases up to 9; larger bases stay on the sequential
// path.
const maxTableBytes = uint64(1) << 32

// AlignmentTable computes AlignmentCount for every v in [0, base^base)
// using the given number of worker goroutines. Workers write disjoint
// chunks of the shared table, so no synchronization beyond the final
// join is needed.
//
// Errors: ErrBaseTooSmall, ErrBaseOverflow, ErrTableTooLarge,
// ErrOptionViolation for workers < 1, or the context's error on
// cancellation.
//
// Complexity: O(base · base^base / workers) per worker;
// Memory: O(base^base).
func AlignmentTable(ctx context.Context, base, workers int) ([]uint8, error) {
	end, err := Period(base)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return alignmentTable(ctx, base, end, workers)
}

// alignmentTable is the shared implementation behind AlignmentTable and
// the WithWorkers Signature path. end must equal base^base and workers
// must be validated by the caller.
func alignmentTable(ctx context.Context, base int, end uint64, workers int) ([]uint8, error) {
	if end > maxTableBytes {
		return nil, fmt.Errorf("%w: base %d needs %d bytes", ErrTableTooLarge, base, end)
	}

	table := make([]uint8, end)
	g, gctx := errgroup.WithContext(ctx)
	chunk := (end + uint64(workers) - 1) / uint64(workers)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, end)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for v := lo; v < hi; v++ {
				if v&cancelCheckMask == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
				}
				table[v] = uint8(AlignmentCount(v, base))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

// signatureFromTable derives the signature from a precomputed alignment
// table. The scan reproduces Signature's sequential semantics exactly:
// probes beyond the table fall back to direct AlignmentCount, matching
// the unguarded successor probe of RunLength.
func signatureFromTable(table []uint8, base int, end uint64, strict bool) ([]Symbol, error) {
	sig := make([]Symbol, 0, end/3+1)
	var v uint64
	for v+1 < end {
		run := 0
		a := table[v]
		for {
			probe := v + 1
			var pa uint8
			if probe < end {
				pa = table[probe]
			} else {
				pa = uint8(AlignmentCount(probe, base))
			}
			if pa != a {
				break
			}
			run++
			v++
		}
		if strict {
			if err := checkRun(run, base, v-uint64(run)); err != nil {
				return nil, err
			}
		}
		v++
		sig = append(sig, Classify(run, base))
	}
	sig = append(sig, Zero)

	return sig, nil
}
