package column

import (
	"encoding/binary"
	"fmt"

	"github.com/bcolfmt/bcol/compress"
	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
	"github.com/bcolfmt/bcol/internal/digest"
)

// ColumnSubtypeFramed is the binary element subtype tag for a column whose
// payload has been wrapped in the optional compression/checksum envelope
// produced by WrapCompressed. Its value is
// [ColumnSubtypeFramed][frame byte][checksum? 8 bytes][compressed payload].
const ColumnSubtypeFramed byte = 0x0A

const frameFlagChecksum byte = 0x80
const frameCompressionMask byte = 0x0F

// FrameOption configures WrapCompressed's envelope.
type FrameOption func(*frameConfig)

type frameConfig struct {
	compression compress.Type
	checksum    bool
}

func defaultFrameConfig() frameConfig {
	return frameConfig{compression: compress.None}
}

// WithCompression selects the whole-column compression algorithm
// WrapCompressed applies to the payload before framing.
func WithCompression(t compress.Type) FrameOption {
	return func(c *frameConfig) {
		c.compression = t
	}
}

// WithChecksum has WrapCompressed append an xxHash64 digest of the
// (possibly compressed) payload, verified by NewView before the column is
// trusted for iteration.
func WithChecksum() FrameOption {
	return func(c *frameConfig) {
		c.checksum = true
	}
}

// WrapCompressed builds the host element that embeds payload (as produced
// by Builder.Done) behind an optional compression and/or checksum
// envelope. An empty payload still returns element.EOO, matching Wrap.
func WrapCompressed(payload []byte, opts ...FrameOption) (element.Value, error) {
	if len(payload) == 0 {
		return element.EOO, nil
	}

	cfg := defaultFrameConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.compression == compress.None && !cfg.checksum {
		return Wrap(payload), nil
	}

	body := payload
	if cfg.compression != compress.None {
		codec, err := compress.GetCodec(cfg.compression)
		if err != nil {
			return element.Value{}, fmt.Errorf("column: %w", err)
		}

		compressed, err := codec.Compress(payload)
		if err != nil {
			return element.Value{}, fmt.Errorf("column: compression failed: %w", err)
		}

		body = compressed
	}

	frameByte := byte(cfg.compression) & frameCompressionMask
	headerLen := 2
	if cfg.checksum {
		frameByte |= frameFlagChecksum
		headerLen += 8
	}

	value := make([]byte, 1+headerLen+len(body))
	value[0] = ColumnSubtypeFramed
	value[1] = frameByte
	if cfg.checksum {
		binary.LittleEndian.PutUint64(value[2:10], digest.Sum(body))
		copy(value[10:], body)
	} else {
		copy(value[2:], body)
	}

	return element.New(element.TypeBinary, value), nil
}

// unwrapFramed reverses WrapCompressed's envelope, returning the raw
// (decompressed, checksum-verified) column payload.
func unwrapFramed(raw []byte) ([]byte, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("column: %w", errs.ErrTruncatedFrame)
	}

	frameByte := raw[1]
	body := raw[2:]

	if frameByte&frameFlagChecksum != 0 {
		if len(body) < 8 {
			return nil, fmt.Errorf("column: %w", errs.ErrTruncatedFrame)
		}

		want := binary.LittleEndian.Uint64(body[:8])
		body = body[8:]
		if !digest.Verify(body, want) {
			return nil, fmt.Errorf("column: %w", errs.ErrChecksumMismatch)
		}
	}

	compressionType := compress.Type(frameByte & frameCompressionMask)
	if compressionType == compress.None {
		return body, nil
	}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("column: decompression failed: %w", err)
	}

	return payload, nil
}
