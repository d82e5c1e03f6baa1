package element

// Type identifies the kind of scalar payload an element carries. The byte
// values follow the self-describing binary document format's own type tags
// so a column's literal elements are indistinguishable, on the wire, from
// the same scalar embedded directly in a document.
type Type byte

const (
	// TypeEOO is the zero type byte, marking end-of-sequence. It is never a
	// real element's type.
	TypeEOO Type = 0x00

	// TypeDouble is an IEEE 754 binary64 value (8 bytes).
	TypeDouble Type = 0x01
	// TypeBool is a single boolean byte (1 byte).
	TypeBool Type = 0x08
	// TypeDateTime is a UTC datetime stored as milliseconds since the Unix
	// epoch, signed (8 bytes).
	TypeDateTime Type = 0x09
	// TypeInt32 is a signed 32-bit integer (4 bytes).
	TypeInt32 Type = 0x10
	// TypeTimestamp is an internal replication timestamp (8 bytes).
	TypeTimestamp Type = 0x11
	// TypeInt64 is a signed 64-bit integer (8 bytes).
	TypeInt64 Type = 0x12
	// TypeDecimal128 is a 128-bit decimal value (16 bytes). It exceeds
	// MaxValueSize and is therefore never delta-compressed: a column
	// containing Decimal128 values always falls back to literal encoding
	// for them.
	TypeDecimal128 Type = 0x13

	// TypeBinary is the host document format's binary type. A column is
	// never stored as a column literal itself — TypeBinary identifies the
	// *outer* host element a column is embedded in (value = [subtype byte]
	// [payload]), the element a View wraps and unwraps. It is deliberately
	// absent from fixedValueSizes: its length is variable and determined by
	// the host element's own framing, not by this package.
	TypeBinary Type = 0x05
)

const (
	// MaxValueSize is the largest value payload, in bytes, the codec will
	// attempt to delta-compress.
	MaxValueSize = 8

	// NameOffset is the number of bytes occupied by the element's type byte
	// plus its (always empty, single NUL byte) field name.
	NameOffset = 2

	// MaxElementSize is the largest possible element the codec treats as
	// delta-compressible: NameOffset + MaxValueSize.
	MaxElementSize = NameOffset + MaxValueSize
)

// fixedValueSizes maps each known type to its fixed value-byte width.
// Column elements always have an empty name, so value width fully
// determines an element's encoded size (NameOffset + value width).
var fixedValueSizes = map[Type]int{
	TypeDouble:     8,
	TypeBool:       1,
	TypeDateTime:   8,
	TypeInt32:      4,
	TypeTimestamp:  8,
	TypeInt64:      8,
	TypeDecimal128: 16,
}

// ValueSizeForType returns the fixed value-byte width for t and whether t is
// a known, fixed-width type. Unknown types (including TypeEOO) report
// ok == false; callers must treat that as a structural error, since a
// column only ever carries the fixed-width scalar types this package knows
// about.
func ValueSizeForType(t Type) (size int, ok bool) {
	size, ok = fixedValueSizes[t]
	return size, ok
}

// IsDeltaCompressible reports whether values of type t can ever appear as
// the target of a Delta/Copy/SetDelta instruction, i.e. whether their fixed
// value width is within MaxValueSize.
func IsDeltaCompressible(t Type) bool {
	size, ok := ValueSizeForType(t)
	return ok && size <= MaxValueSize
}
