package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bcolfmt/bcol/compress"
	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
)

func buildSamplePayload(t *testing.T) []byte {
	t.Helper()

	b := NewBuilder()
	defer b.Release()

	v := element.New(element.TypeInt64, []byte{7, 0, 0, 0, 0, 0, 0, 0})
	for i := 0; i < 20; i++ {
		require.NoError(t, b.Append(i, v))
	}

	return b.Done()
}

func TestWrapCompressedRoundTripsWithChecksum(t *testing.T) {
	payload := buildSamplePayload(t)

	elem, err := WrapCompressed(payload, WithChecksum())
	require.NoError(t, err)

	view, err := NewView(elem)
	require.NoError(t, err)
	require.Equal(t, 20, view.NFields())
}

func TestWrapCompressedRoundTripsWithCompression(t *testing.T) {
	payload := buildSamplePayload(t)

	for _, typ := range []compress.Type{compress.Zstd, compress.S2, compress.LZ4} {
		elem, err := WrapCompressed(payload, WithCompression(typ))
		require.NoError(t, err)

		view, err := NewView(elem)
		require.NoError(t, err)
		require.Equal(t, 20, view.NFields())
		require.Equal(t, uint64(7), view.At(0).Uint64LE())
	}
}

func TestWrapCompressedDetectsChecksumMismatch(t *testing.T) {
	payload := buildSamplePayload(t)

	elem, err := WrapCompressed(payload, WithChecksum())
	require.NoError(t, err)

	corrupted := append([]byte(nil), elem.Value()...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = NewView(element.New(element.TypeBinary, corrupted))
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestWrapCompressedDetectsTruncatedFrame(t *testing.T) {
	payload := buildSamplePayload(t)

	elem, err := WrapCompressed(payload, WithChecksum())
	require.NoError(t, err)

	raw := elem.Value()
	_, err = NewView(element.New(element.TypeBinary, raw[:5])) // header present, checksum cut short
	require.ErrorIs(t, err, errs.ErrTruncatedFrame)

	_, err = NewView(element.New(element.TypeBinary, raw[:1])) // frame byte itself missing
	require.ErrorIs(t, err, errs.ErrTruncatedFrame)
}

func TestWrapCompressedWithNoOptionsMatchesPlainWrap(t *testing.T) {
	payload := buildSamplePayload(t)

	elem, err := WrapCompressed(payload)
	require.NoError(t, err)
	require.Equal(t, Wrap(payload), elem)
}
