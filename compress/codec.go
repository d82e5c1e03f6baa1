package compress

import (
	"fmt"

	"github.com/bcolfmt/bcol/errs"
)

// Type identifies a whole-column compression algorithm.
type Type uint8

const (
	// None applies no compression; Compress/Decompress are passthroughs.
	None Type = 0x1
	// Zstd applies Zstandard compression: best ratio, moderate speed.
	Zstd Type = 0x2
	// S2 applies S2 compression: balanced ratio and speed.
	S2 Type = 0x3
	// LZ4 applies LZ4 compression: fastest decompression.
	LZ4 Type = 0x4
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Compressor compresses a finished column's bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for t.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: type %s: %w", t, errs.ErrUnsupportedCompression)
}
