// Package trinoise is a deterministic three-valued noise generator built
// on number theory — digit alignment against the identity map, run
// detection over consecutive naturals, and a provably periodic signature.
//
// 🚀 What is trinoise?
//
//	A small, reproducible pseudo-noise library that brings together:
//		• Digit alignment: count positions of v matching the identity map in base N
//		• Run detection: how many successors of v share its alignment
//		• Three-valued classification: every run folds into Zero, Low or High
//		• Full-period signatures: one symbol per run across [0, N^N)
//		• Spectrum analysis: symbol frequencies and the balance conjectures
//		• Cyclic wheels: compiled, bit-packed signatures for O(1) lookup
//
// ✨ Why choose trinoise?
//
//   - Fully deterministic – same base, same signature, on every platform
//   - Bounded by construction – run lengths are always 0, N-2 or N-1 (N > 2)
//   - Periodic by design – the pattern repeats after exactly N^N naturals
//   - Overflow-safe – bases whose period exceeds uint64 are rejected up front
//
// Under the hood, everything is organized under these subpackages:
//
//	noise/    — the engine: AlignmentCount, RunLength, Classify, Signature
//	spectrum/ — symbol distributions, balance checks, convergence ratios
//	wheel/    — compiled cyclic lookup tables, binary codec, shared store
//	cmd/      — the trinoise CLI (signature, stats, render)
//
// Quick taste:
//
//	sig, _ := noise.Signature(3)
//	// sig = [Low High Zero Low Zero Low High Zero Low Zero Low High Zero Low Zero]
//
// Dive into README.md for the mathematical background, the groupoid
// construction this noise derives from, and the open conjectures.
//
//	go get github.com/katalvlaran/trinoise/noise
package trinoise
