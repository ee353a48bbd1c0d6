// Package wheel compiles trinoise signatures into immutable cyclic
// lookup tables, with a compact binary codec and a goroutine-safe store.
//
// What:
//
//   - Wheel packs one full signature period at 2 bits per symbol and
//     serves cyclic lookups: At(i) wraps i modulo the period length.
//   - MarshalBinary / UnmarshalBinary round-trip a Wheel through a
//     versioned little-endian format for caching on disk or the wire.
//   - Store lazily compiles and shares one Wheel per base across
//     goroutines; each base is generated at most once.
//
// Why:
//
//   - Signatures are pure functions of the base: compute once, look up
//     forever. A base-6 period folds 46656 naturals into 13998 runs,
//     stored in 3.5 KiB.
//   - Procedural generation wants O(1) random access into the cycle,
//     not a re-walk of the period.
//
// Usage:
//
//	import "github.com/katalvlaran/trinoise/wheel"
//
//	w, err := wheel.Compile(5)
//	s := w.At(1_000_000) // cyclic: index taken modulo w.Len()
//
// Complexity:
//
//   - Compile:  cost of noise.Signature + O(runs) packing.
//   - At:       O(1). Levels: O(n). Symbols: O(runs).
//   - Store.Get: O(1) after the first call per base.
//
// Errors:
//
//   - Compile propagates noise.Signature errors; FromSymbols rejects
//     empty or out-of-range input; Unmarshal rejects bad magic, version,
//     base, or truncated payloads.
//
// See example_test.go for runnable examples.
package wheel
