package wheel_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trinoise/noise"
	"github.com/katalvlaran/trinoise/wheel"
)

// TestCodec_RoundTrip encodes and decodes a wheel and compares every
// observable property.
func TestCodec_RoundTrip(t *testing.T) {
	src, err := wheel.Compile(5)
	require.NoError(t, err)

	data, err := src.MarshalBinary()
	require.NoError(t, err)

	var dst wheel.Wheel
	require.NoError(t, dst.UnmarshalBinary(data))
	assert.Equal(t, src.Base(), dst.Base())
	assert.Equal(t, src.Len(), dst.Len())
	assert.Equal(t, src.Counts(), dst.Counts())
	assert.Equal(t, src.Symbols(), dst.Symbols())
}

// TestCodec_Deterministic checks that equal wheels produce identical
// bytes, so encodings can be compared or content-addressed.
func TestCodec_Deterministic(t *testing.T) {
	a, err := wheel.Compile(4)
	require.NoError(t, err)
	b, err := wheel.Compile(4)
	require.NoError(t, err)

	da, err := a.MarshalBinary()
	require.NoError(t, err)
	db, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

// TestCodec_RejectsBadInput walks the validation arms of UnmarshalBinary.
func TestCodec_RejectsBadInput(t *testing.T) {
	src, err := wheel.Compile(3)
	require.NoError(t, err)
	good, err := src.MarshalBinary()
	require.NoError(t, err)

	var w wheel.Wheel

	// Too short for a header.
	assert.ErrorIs(t, w.UnmarshalBinary(good[:5]), wheel.ErrCodecTruncated)

	// Wrong magic.
	bad := append([]byte(nil), good...)
	bad[0] = 'X'
	assert.ErrorIs(t, w.UnmarshalBinary(bad), wheel.ErrCodecMagic)

	// Unknown version.
	bad = append([]byte(nil), good...)
	bad[4] = 9
	assert.ErrorIs(t, w.UnmarshalBinary(bad), wheel.ErrCodecVersion)

	// Out-of-domain base.
	bad = append([]byte(nil), good...)
	bad[5] = 1
	assert.ErrorIs(t, w.UnmarshalBinary(bad), noise.ErrBaseTooSmall)

	// Truncated payload.
	assert.ErrorIs(t, w.UnmarshalBinary(good[:len(good)-1]), wheel.ErrCodecTruncated)

	// Forged length field: more runs than the base-3 period (27) could
	// ever produce must be rejected before any payload indexing.
	bad = append([]byte(nil), good...)
	binary.LittleEndian.PutUint64(bad[6:], 28)
	assert.ErrorIs(t, w.UnmarshalBinary(bad), wheel.ErrCodecLength)

	// Nonzero padding bits beyond the last symbol.
	bad = append([]byte(nil), good...)
	bad[len(bad)-1] |= 0xC0
	assert.ErrorIs(t, w.UnmarshalBinary(bad), wheel.ErrCodecPadding)
}

// TestCodec_ForgedHugeLength feeds a header-only message whose length
// field is the maximum uint64. The payload-size arithmetic must not
// wrap around and index an empty packed slice; decoding fails cleanly.
func TestCodec_ForgedHugeLength(t *testing.T) {
	data := make([]byte, 14)
	copy(data, "TRIW")
	data[4] = 1 // codec version
	data[5] = 3 // base
	binary.LittleEndian.PutUint64(data[6:], ^uint64(0))

	var w wheel.Wheel
	assert.ErrorIs(t, w.UnmarshalBinary(data), wheel.ErrCodecLength)
}

// TestCodec_ErrorLeavesReceiverUntouched verifies a failed decode does
// not clobber an existing wheel.
func TestCodec_ErrorLeavesReceiverUntouched(t *testing.T) {
	src, err := wheel.Compile(3)
	require.NoError(t, err)
	data, err := src.MarshalBinary()
	require.NoError(t, err)

	var w wheel.Wheel
	require.NoError(t, w.UnmarshalBinary(data))
	require.Error(t, w.UnmarshalBinary(data[:3]))
	assert.Equal(t, src.Symbols(), w.Symbols(), "receiver must survive a failed decode")
}
