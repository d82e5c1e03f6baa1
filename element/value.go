package element

import (
	"bytes"
	"fmt"

	"github.com/bcolfmt/bcol/endian"
	"github.com/bcolfmt/bcol/errs"
)

// littleEndian is the engine every delta computation and value
// (de)serialization in this package uses: delta arithmetic is always
// little-endian-based regardless of host endianness.
var littleEndian = endian.GetLittleEndianEngine()

// Value is a minimal read-only view over one scalar element: a type byte,
// an implicit empty field name (one NUL byte), and a value payload. It
// satisfies the Element contract required by the column package.
//
// A Value either owns its backing bytes (constructed via New) or borrows
// them (constructed via View, pointing into a column's source stream or
// into a deltastore.Store slot). Callers must not mutate the slice passed
// to View after construction.
type Value struct {
	// raw is the full element encoding: [type][0x00][value...].
	raw []byte
}

// EOO is the zero-value Element, representing an absent position in a
// column (a logical index that falls in a gap, or beyond the decoded
// sequence's end).
var EOO = Value{raw: []byte{byte(TypeEOO)}}

// New constructs a Value that owns a freshly allocated copy of value.
func New(t Type, value []byte) Value {
	raw := make([]byte, NameOffset+len(value))
	raw[0] = byte(t)
	raw[1] = 0x00
	copy(raw[2:], value)

	return Value{raw: raw}
}

// View wraps data as a Value without copying. data must already be in the
// [type][0x00][value...] layout; the caller retains ownership and must not
// mutate it while the Value is in use.
func View(data []byte) Value {
	return Value{raw: data}
}

// ParseElement reads one element from the head of data using the fixed
// value width registered for data[0]'s type.
//
// ParseElement does not accept a TypeEOO lead byte; callers must check for
// the terminator before calling ParseElement, per the column wire format.
func ParseElement(data []byte) (Value, int, error) {
	if len(data) == 0 {
		return Value{}, 0, fmt.Errorf("element: empty data")
	}

	t := Type(data[0])
	if t == TypeEOO {
		return Value{}, 0, fmt.Errorf("element: unexpected EOO type byte")
	}

	size, ok := ValueSizeForType(t)
	if !ok {
		return Value{}, 0, fmt.Errorf("element: unknown type byte 0x%02x", data[0])
	}

	total := NameOffset + size
	if len(data) < total {
		return Value{}, 0, fmt.Errorf("element: need %d bytes, have %d: %w", total, len(data), errs.ErrTruncatedLiteral)
	}

	if data[1] != 0x00 {
		return Value{}, 0, fmt.Errorf("element: %w", errs.ErrNonEmptyFieldName)
	}

	return Value{raw: data[:total]}, total, nil
}

// Type returns the element's type byte. TypeEOO (zero) denotes the absent
// sentinel.
func (v Value) Type() Type {
	if len(v.raw) == 0 {
		return TypeEOO
	}

	return Type(v.raw[0])
}

// EOO reports whether this Value is the end-of-sequence / absent sentinel.
func (v Value) EOO() bool {
	return v.Type() == TypeEOO
}

// ValueSize returns the length, in bytes, of the value payload.
func (v Value) ValueSize() int {
	if len(v.raw) < NameOffset {
		return 0
	}

	return len(v.raw) - NameOffset
}

// Value returns the value payload bytes (excludes the type byte and the
// empty-name NUL byte).
func (v Value) Value() []byte {
	if len(v.raw) < NameOffset {
		return nil
	}

	return v.raw[NameOffset:]
}

// RawData returns the full element encoding: [type][0x00][value...].
func (v Value) RawData() []byte {
	return v.raw
}

// Size returns the total encoded size of the element in bytes.
func (v Value) Size() int {
	return len(v.raw)
}

// BinaryEqualValues reports whether v and other carry the same type and
// identical value bytes. It reports false whenever either side is EOO,
// including EOO against EOO. Field names are not compared (both are always
// empty within a column).
func (v Value) BinaryEqualValues(other Value) bool {
	if v.EOO() || other.EOO() {
		return false
	}

	return v.Type() == other.Type() && bytes.Equal(v.Value(), other.Value())
}

// Uint64LE interprets the value payload as a little-endian unsigned
// integer, zero-extended to 64 bits. Only meaningful for values with
// ValueSize() <= 8; callers must check IsDeltaCompressible(v.Type())
// first.
func (v Value) Uint64LE() uint64 {
	var buf [8]byte
	copy(buf[:], v.Value())

	return littleEndian.Uint64(buf[:])
}
