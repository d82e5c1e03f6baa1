// Package element implements the minimal read-only scalar element view the
// columnar codec in the column package requires: a type byte, an empty
// field name, and up to element.MaxValueSize bytes of little-endian value
// payload.
//
// The codec is designed so a host document format can supply its own view
// over this contract; Value is bcol's own concrete implementation, used by
// both the column package and bcol's tests.
//
// Widening MaxValueSize to 16 (to delta-compress 128-bit decimal values) is
// possible without changing the wire format for values that already fit in
// 8 bytes, but bcol does not do so: oversized values always fall back to
// literal encoding, which is sufficient for every type this package defines.
package element
