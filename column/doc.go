// Package column implements the columnar value codec: a View that wraps and
// validates an encoded column's bytes, an Iterator that walks the decoded
// logical sequence forward, and a Builder that encodes a sequence of
// (index, value) appends into the same wire format.
//
// A column is embedded in the host document format as a binary-subtyped
// element: value = [subtype byte][payload], where payload is
//
//	initial-literal instruction* 0x00
//
// Wrap produces the plain form of this envelope. WrapCompressed produces a
// second, framed envelope (a different subtype byte) that layers optional
// whole-payload compression and an xxHash64 checksum on top of the same
// payload; NewView accepts either form transparently.
//
// Logical indices are relative to the column's own first Append/first
// element: whatever index the first value in the sequence was assigned,
// the column itself always begins counting from that position as index 0.
// Mapping a column's relative indices back to a host-wide absolute
// numbering, if the host needs one, is outside this package's scope.
package column
