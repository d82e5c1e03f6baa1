package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost/compress/s2, a Snappy-compatible format with
// better ratio and similar throughput. A reasonable default when a column's
// access pattern favors cheap decode over minimal size.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns an S2Compressor. The type carries no state, so
// the zero value works equally well; the constructor exists for symmetry
// with the other codec constructors.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
