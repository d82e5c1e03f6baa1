//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress uses gozstd's cgo binding at a fixed moderate level. Selected
// over the pure-Go path via the nobuild tag when cgo's throughput is worth
// the build-time dependency on libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
