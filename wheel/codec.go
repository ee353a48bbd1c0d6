package wheel

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/trinoise/noise"
)

// Binary layout, little-endian:
//
//	offset  size  field
//	0       4     magic "TRIW"
//	4       1     codec version (currently 1)
//	5       1     base
//	6       8     period length in runs
//	14      n     packed symbols, 4 per byte, (length+3)/4 bytes
//
// Unused bits of the final byte are zero.
const (
	codecMagic   = "TRIW"
	codecVersion = 1
	headerSize   = 4 + 1 + 1 + 8
)

// MarshalBinary encodes the wheel into the versioned binary format.
// The inverse of UnmarshalBinary; never fails for a constructed Wheel.
func (w *Wheel) MarshalBinary() ([]byte, error) {
	out := make([]byte, headerSize+len(w.packed))
	copy(out, codecMagic)
	out[4] = codecVersion
	out[5] = byte(w.base)
	binary.LittleEndian.PutUint64(out[6:], w.length)
	copy(out[headerSize:], w.packed)

	return out, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, rebuilding
// the symbol counts from the payload. The receiver is overwritten on
// success and untouched on error.
//
// Errors: ErrCodecMagic, ErrCodecVersion, ErrCodecTruncated,
// ErrCodecLength, ErrCodecPadding, ErrEmptySignature, ErrSymbolRange,
// or the engine's base domain errors.
func (w *Wheel) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrCodecTruncated, len(data), headerSize)
	}
	if string(data[:4]) != codecMagic {
		return fmt.Errorf("%w: %q", ErrCodecMagic, data[:4])
	}
	if data[4] != codecVersion {
		return fmt.Errorf("%w: %d", ErrCodecVersion, data[4])
	}

	base := int(data[5])
	period, err := noise.Period(base)
	if err != nil {
		return err
	}
	length := binary.LittleEndian.Uint64(data[6:14])
	if length == 0 {
		return ErrEmptySignature
	}
	// Every run covers at least one position, so no signature has more
	// runs than the period. This also keeps the packedLen arithmetic
	// below far from uint64 wraparound for a forged length field.
	if length > period {
		return fmt.Errorf("%w: %d runs, base %d period is %d", ErrCodecLength, length, base, period)
	}
	packedLen := (length + symbolsPerByte - 1) / symbolsPerByte
	payload := data[headerSize:]
	if uint64(len(payload)) != packedLen {
		return fmt.Errorf("%w: %d payload bytes, want %d", ErrCodecTruncated, len(payload), packedLen)
	}

	decoded := Wheel{
		base:   base,
		length: length,
		packed: append([]byte(nil), payload...),
	}
	for i := uint64(0); i < length; i++ {
		s := decoded.At(i)
		if s > noise.High {
			return fmt.Errorf("%w: %d at index %d", ErrSymbolRange, uint8(s), i)
		}
		decoded.counts[s]++
	}
	// Trailing pad bits must be zero so equal wheels encode identically.
	if pad := length % symbolsPerByte; pad != 0 {
		if payload[packedLen-1]>>(uint(pad)*symbolBits) != 0 {
			return ErrCodecPadding
		}
	}
	*w = decoded

	return nil
}
