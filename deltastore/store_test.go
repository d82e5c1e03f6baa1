package deltastore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bcolfmt/bcol/element"
)

func TestApplyDeltaAppendsNewSlot(t *testing.T) {
	store := New()
	base := element.New(element.TypeInt64, []byte{10, 0, 0, 0, 0, 0, 0, 0})

	result, err := store.ApplyDelta(0, base, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(15), result.Uint64LE())
	require.Equal(t, 1, store.Len())
}

func TestApplyDeltaDeterministicReuse(t *testing.T) {
	store := New()
	base := element.New(element.TypeInt64, []byte{10, 0, 0, 0, 0, 0, 0, 0})

	first, err := store.ApplyDelta(0, base, 5)
	require.NoError(t, err)

	second, err := store.ApplyDelta(0, base, 5)
	require.NoError(t, err)
	require.Equal(t, first.RawData(), second.RawData())
	require.Equal(t, 1, store.Len())
}

func TestApplyDeltaDeterminismViolationPanics(t *testing.T) {
	store := New()
	base := element.New(element.TypeInt64, []byte{10, 0, 0, 0, 0, 0, 0, 0})

	_, err := store.ApplyDelta(0, base, 5)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = store.ApplyDelta(0, base, 6) // different delta, same index: determinism violated
	})
}

// TestApplyDeltaOverflow exercises wraparound mod 2^64: base =
// 0xFFFFFFFFFFFFFFF0, delta = 0x15 (21), result = 0x0000000000000005.
func TestApplyDeltaOverflow(t *testing.T) {
	store := New()

	baseBytes := []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF} // little-endian 0xFFFFFFFFFFFFFFF0
	base := element.New(element.TypeInt64, baseBytes)

	result, err := store.ApplyDelta(0, base, 0x15)
	require.NoError(t, err)
	require.Equal(t, uint64(5), result.Uint64LE())
}

func TestCalculateDeltaRoundTrip(t *testing.T) {
	base := element.New(element.TypeDouble, []byte{0, 0, 0, 0, 0, 0, 0x52, 0x40})
	modified := element.New(element.TypeDouble, []byte{0, 0, 0, 0, 0, 0, 0x53, 0x40})

	delta := CalculateDelta(base, modified)
	require.NotZero(t, delta)

	store := New()
	applied, err := store.ApplyDelta(0, base, delta)
	require.NoError(t, err)
	require.Equal(t, modified.Value(), applied.Value())
}

func TestCalculateDeltaOverflow(t *testing.T) {
	base := element.New(element.TypeInt64, []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	modified := element.New(element.TypeInt64, []byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

	delta := CalculateDelta(base, modified)
	require.Equal(t, uint64(0x15), delta)
}

func TestCalculateDeltaIdentityReturnsZero(t *testing.T) {
	base := element.New(element.TypeInt64, []byte{1, 0, 0, 0, 0, 0, 0, 0})
	require.Zero(t, CalculateDelta(base, base))
}

func TestCalculateDeltaTypeMismatchReturnsZero(t *testing.T) {
	a := element.New(element.TypeInt64, []byte{1, 0, 0, 0, 0, 0, 0, 0})
	b := element.New(element.TypeInt32, []byte{1, 0, 0, 0})

	require.Zero(t, CalculateDelta(a, b))
}

func TestCalculateDeltaOversizedReturnsZero(t *testing.T) {
	a := element.New(element.TypeDecimal128, make([]byte, 16))
	b := element.New(element.TypeDecimal128, make([]byte, 16))
	b.RawData()[2] = 1 // make them differ

	require.Zero(t, CalculateDelta(a, b))
}

func TestApplyDeltaRejectsOversizedValue(t *testing.T) {
	store := New()
	base := element.New(element.TypeDecimal128, make([]byte, 16))

	_, err := store.ApplyDelta(0, base, 1)
	require.Error(t, err)
}
