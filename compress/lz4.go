package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// compressorPool recycles lz4.Compressor values. The type keeps an internal
// hash table sized for its last input; reusing one across calls avoids
// re-allocating that table on every column compressed.
var compressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps pierrec/lz4, trading compression ratio for the
// fastest decode of the three codecs this package offers. A good fit for a
// column that is compressed once and decoded often.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as a single LZ4 block (no frame header), since the
// caller already knows the boundaries of what it's compressing.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := compressorPool.Get().(*lz4.Compressor)
	defer compressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reverses Compress. Block-mode LZ4 carries no size header, so
// the decompressed length is unknown up front; this grows the destination
// buffer geometrically on ErrInvalidSourceShortBuffer, bounded by maxBlockSize
// to fail fast on corrupt input rather than growing without limit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxBlockSize = 128 * 1024 * 1024

	for bufSize := len(data) * 4; bufSize <= maxBlockSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
