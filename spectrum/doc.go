// Package spectrum analyzes symbol distributions of trinoise signatures:
// per-symbol frequencies, the balance law, and convergence ratios.
//
// What:
//
//   - Distribution tallies Zero/Low/High occurrences of one full period.
//   - Count folds an existing signature; Profile generates and folds.
//   - Balanced reports the conjectured Zero == Low equality (base > 2).
//   - Ratio returns freq(Zero)/freq(High), which converges to base-2 as
//     the base grows (conjecture).
//
// Why:
//
//   - Procedural generation: pick a base by the symbol mix it produces.
//   - Conjecture testing: verify the frequency laws on every base the
//     machine can afford.
//   - Regression safety: a changed distribution means a changed engine.
//
// Known distributions (Zero, Low, High):
//
//	base 3: (6, 6, 3)          base 5: (470, 470, 155)
//	base 4: (44, 44, 20)       base 6: (6222, 6222, 1554)
//
// Complexity:
//
//   - Count:   O(len(signature)), Memory: O(1).
//   - Profile: cost of noise.Signature plus one linear fold.
//
// Errors:
//
//   - Profile propagates noise.Signature errors unchanged
//     (ErrBaseTooSmall, ErrBaseOverflow, option and context errors).
//
// See example_test.go for runnable examples.
package spectrum
