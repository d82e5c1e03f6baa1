// Package compress provides whole-column compression codecs.
//
// A column's encoded bytes (the output of column.Builder.Done) are
// variable-length and already benefit somewhat from the codec's own
// run-length coalescing, but a general-purpose byte compressor can still
// shrink long Copy/Delta runs and repeated literal element bytes further.
// Compression, when used, wraps the finished column payload as an
// additional framing layer; it is never applied instruction-by-instruction.
//
// Four algorithms are supported: None (passthrough), Zstd (best ratio),
// S2 (balanced), and LZ4 (fastest decompression). GetCodec resolves a
// Type to its Codec.
package compress
