// Package noise implements the trinoise engine: a deterministic,
// three-valued pseudo-noise sequence over the naturals, derived from
// digit alignment against the identity map in a chosen base.
//
// 🚀 How does it work?
//
//	Every natural v in [0, N^N) is read as exactly N digits in base N.
//	Comparing those digits to the identity map (0, 1, ..., N-1) gives an
//	alignment count. Consecutive naturals sharing the same alignment form
//	runs, and each run length collapses into one of three symbols:
//	  • Zero — the run has no successors (length 0)
//	  • Low  — the run has N-2 successors
//	  • High — the run has N-1 successors
//	One symbol per run, across one full period, is the Signature.
//
// ✨ Key properties:
//   - Deterministic & pure: same (v, N) in, same value out, no hidden state
//   - Periodic: the pattern repeats after exactly N^N naturals
//   - Three-valued: run lengths other than {0, N-2, N-1} never occur for
//     N > 2 (conjecture; enforceable via WithStrict)
//   - Every signature ends in Zero: the wrap boundary has no successors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trinoise/noise"
//
//	sig, err := noise.Signature(3)
//	// sig == [Low High Zero Low Zero Low High Zero Low Zero Low High Zero Low Zero]
//
//	a := noise.AlignmentCount(5, 3) // 3 — "012" is the identity map in base 3
//	r := noise.RunLength(2, 3)      // 2 — values 3 and 4 share alignment with 2
//
// Performance:
//
//   - AlignmentCount: O(N) time, zero allocations
//   - Signature:      O(N·N^N) time worst case, one output slice
//   - WithWorkers(k): parallel alignment precompute, O(N^N) extra memory
//
// Errors:
//
//   - ErrBaseTooSmall:  base < 2
//   - ErrBaseOverflow:  base > MaxBase (base^base exceeds uint64)
//   - ErrRunConjecture: strict mode saw a run length outside {0, N-2, N-1}
//   - ErrTableTooLarge: parallel precompute would exceed the memory cap
//
// See example_test.go for runnable examples.
package noise
