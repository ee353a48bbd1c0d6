package wheel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trinoise/noise"
)

// Sentinel errors for wheel construction and decoding.
var (
	// ErrEmptySignature indicates an attempt to build a Wheel from no symbols.
	ErrEmptySignature = errors.New("wheel: signature must be non-empty")

	// ErrSymbolRange indicates a symbol outside {Zero, Low, High}.
	ErrSymbolRange = errors.New("wheel: symbol out of range")

	// ErrCodecMagic indicates serialized data without the wheel magic.
	ErrCodecMagic = errors.New("wheel: bad magic")

	// ErrCodecVersion indicates an unsupported codec version.
	ErrCodecVersion = errors.New("wheel: unsupported codec version")

	// ErrCodecTruncated indicates serialized data shorter than its header claims.
	ErrCodecTruncated = errors.New("wheel: truncated payload")

	// ErrCodecPadding indicates nonzero bits beyond the last symbol.
	ErrCodecPadding = errors.New("wheel: nonzero padding bits")

	// ErrCodecLength indicates a header length no signature of the
	// encoded base could have.
	ErrCodecLength = errors.New("wheel: length exceeds period")
)

// symbolBits is the storage width per symbol: three values fit in 2 bits.
const (
	symbolBits      = 2
	symbolsPerByte  = 8 / symbolBits
	symbolValueMask = 1<<symbolBits - 1
)

// Wheel is an immutable compiled signature: one full noise period for a
// base, packed 4 symbols per byte, addressed cyclically. Safe for
// concurrent use; all methods are read-only.
type Wheel struct {
	base   int
	length uint64
	counts [3]uint64
	packed []byte
}

// Compile generates the signature for base and packs it into a Wheel.
// Options are forwarded to noise.Signature, so cancellation, strict
// checking and parallel precompute all apply.
func Compile(base int, opts ...noise.Option) (*Wheel, error) {
	sig, err := noise.Signature(base, opts...)
	if err != nil {
		return nil, err
	}

	return FromSymbols(base, sig)
}

// FromSymbols packs an already-computed signature into a Wheel.
// The base is validated against the engine's domain; the signature must
// be non-empty and contain only the three defined symbols.
//
// Complexity: O(len(sig)).
func FromSymbols(base int, sig []noise.Symbol) (*Wheel, error) {
	if _, err := noise.Period(base); err != nil {
		return nil, err
	}
	if len(sig) == 0 {
		return nil, ErrEmptySignature
	}

	w := &Wheel{
		base:   base,
		length: uint64(len(sig)),
		packed: make([]byte, (len(sig)+symbolsPerByte-1)/symbolsPerByte),
	}
	for i, s := range sig {
		if s > noise.High {
			return nil, fmt.Errorf("%w: %d at index %d", ErrSymbolRange, uint8(s), i)
		}
		w.counts[s]++
		w.packed[i/symbolsPerByte] |= byte(s) << (uint(i%symbolsPerByte) * symbolBits)
	}

	return w, nil
}

// Base returns the numeral-system radix this wheel was compiled for.
func (w *Wheel) Base() int { return w.base }

// Len returns the period length in runs (the signature length).
func (w *Wheel) Len() uint64 { return w.length }

// Counts returns the per-symbol tally, indexed by Symbol value.
func (w *Wheel) Counts() [3]uint64 { return w.counts }

// At returns the symbol at cyclic index i: the index is taken modulo
// Len(), so any uint64 is a valid position on the wheel.
//
// Complexity: O(1).
func (w *Wheel) At(i uint64) noise.Symbol {
	i %= w.length
	shift := uint(i%symbolsPerByte) * symbolBits

	return noise.Symbol(w.packed[i/symbolsPerByte] >> shift & symbolValueMask)
}

// Symbols unpacks the full period back into a fresh slice.
//
// Complexity: O(Len()).
func (w *Wheel) Symbols() []noise.Symbol {
	sig := make([]noise.Symbol, w.length)
	for i := uint64(0); i < w.length; i++ {
		sig[i] = w.At(i)
	}

	return sig
}

// Levels returns n consecutive display values {0, base-2, base-1}
// starting at cyclic offset, ready for rendering as noise.
// Returns nil for n < 1.
//
// Complexity: O(n).
func (w *Wheel) Levels(offset uint64, n int) []int {
	if n < 1 {
		return nil
	}
	levels := make([]int, n)
	for i := 0; i < n; i++ {
		levels[i] = w.At(offset + uint64(i)).Level(w.base)
	}

	return levels
}
