// Package digest computes and verifies a stable 64-bit checksum over a
// column's encoded bytes, letting a View reject a corrupted or truncated
// payload before any instruction is decoded.
package digest

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Verify reports whether data's digest matches want.
func Verify(data []byte, want uint64) bool {
	return Sum(data) == want
}
