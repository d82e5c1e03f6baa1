package instruction

import (
	"fmt"

	"github.com/bcolfmt/bcol/errs"
)

// Instruction is a single parsed opcode from a column's instruction stream.
// Exactly one of its argument fields is meaningful, depending on Kind:
//
//   - KindLiteral0 / KindLiteral1: LiteralType (the element's own type byte,
//     equal to the instruction's op byte).
//   - KindSkip / KindDelta / KindCopy: Count, the number of positions the
//     instruction advances or the number of repeated emissions.
//   - KindSetDelta / KindSetNegDelta: DeltaMagnitude, the unsigned magnitude
//     of the newly established delta (the sign is implied by Kind).
type Instruction struct {
	Kind           Kind
	LiteralType    byte
	Count          uint64
	DeltaMagnitude uint64
}

// Literal builds a literal instruction for the given element type byte.
func Literal(typeByte byte) Instruction {
	return Instruction{Kind: LiteralTypeKind(typeByte), LiteralType: typeByte}
}

// Skip builds a Skip(count) instruction.
func Skip(count uint64) Instruction {
	return Instruction{Kind: KindSkip, Count: count}
}

// Copy builds a Copy(count) instruction.
func Copy(count uint64) Instruction {
	return Instruction{Kind: KindCopy, Count: count}
}

// Delta builds a Delta(count) instruction.
func Delta(count uint64) Instruction {
	return Instruction{Kind: KindDelta, Count: count}
}

// SetDelta builds a SetDelta instruction establishing prevailing delta
// +magnitude. magnitude must be nonzero.
func SetDelta(magnitude uint64) Instruction {
	return Instruction{Kind: KindSetDelta, DeltaMagnitude: magnitude}
}

// SetNegDelta builds a SetNegDelta instruction establishing prevailing
// delta -magnitude. magnitude must be nonzero.
func SetNegDelta(magnitude uint64) Instruction {
	return Instruction{Kind: KindSetNegDelta, DeltaMagnitude: magnitude}
}

// trailingZeroNibbles returns the number of trailing all-zero 4-bit groups
// in d, capped at 15 (the maximum value a 4-bit nibble field can hold).
func trailingZeroNibbles(d uint64) int {
	if d == 0 {
		return 0
	}

	n := 0
	for n < 15 && d&0xF == 0 {
		d >>= 4
		n++
	}

	return n
}

// prefixDigitCount returns the minimal number of base-128 digits needed to
// represent p (zero digits for p == 0).
func prefixDigitCount(p uint64) int {
	if p == 0 {
		return 0
	}

	n := 0
	for p > 0 {
		n++
		p >>= 7
	}

	return n
}

// nibbleAndP computes the op byte's nibble field and the base-128 argument
// P for count-style and set-delta-style instructions. It is undefined for
// literal kinds, which carry no numeric argument.
func (i Instruction) nibbleAndP() (nibble byte, p uint64) {
	switch {
	case i.Kind.IsCount():
		return byte(i.Count & 0x0F), i.Count >> 4
	case i.Kind.IsSetDelta():
		shift := trailingZeroNibbles(i.DeltaMagnitude)
		base := i.DeltaMagnitude >> (4 * shift)

		return byte(shift), base - 1
	default:
		return 0, 0
	}
}

// SizeBytes returns the number of bytes Append will write for i: one op
// byte, plus the minimum number of prefix bytes needed to encode its
// argument.
func (i Instruction) SizeBytes() int {
	if i.Kind.IsLiteral() {
		return 1
	}

	_, p := i.nibbleAndP()

	return 1 + prefixDigitCount(p)
}

// Append serializes i onto buf, writing prefix bytes most-significant-digit
// first followed by the op byte, and returns the extended slice.
func (i Instruction) Append(buf []byte) []byte {
	if i.Kind.IsLiteral() {
		return append(buf, i.LiteralType)
	}

	nibble, p := i.nibbleAndP()

	k := prefixDigitCount(p)
	if k > 0 {
		// Extract base-128 digits, most significant first.
		digits := make([]byte, k)
		tmp := p
		for idx := k - 1; idx >= 0; idx-- {
			digits[idx] = byte(tmp & 0x7F)
			tmp >>= 7
		}

		for _, d := range digits {
			buf = append(buf, d|0x80)
		}
	}

	op := byte(i.Kind)<<4 | nibble

	return append(buf, op)
}

// Parse reads one instruction from the head of data: zero or more prefix
// bytes (high bit set) followed by exactly one op byte (high bit clear).
// It returns the parsed Instruction and the number of bytes consumed.
//
// Parse never advances past an EOO (zero) byte: reaching one where the op
// byte belongs returns ErrTruncatedInstruction. Callers check data[0] != 0
// before calling Parse, per the column wire format. Parse
// does not consume a literal instruction's embedded element bytes — that
// is the caller's (the column decoder's) responsibility.
func Parse(data []byte) (Instruction, int, error) {
	offset := 0

	var p uint64
	for offset < len(data) && data[offset]&0x80 != 0 {
		p = p*128 + uint64(data[offset]&0x7F)
		offset++
	}

	if offset >= len(data) {
		return Instruction{}, 0, errs.ErrTruncatedInstruction
	}

	op := data[offset]
	if op == 0 {
		return Instruction{}, 0, errs.ErrTruncatedInstruction
	}

	offset++

	kind := Kind(op >> 4)
	nibble := uint64(op & 0x0F)

	switch {
	case kind.IsLiteral():
		return Instruction{Kind: kind, LiteralType: op}, offset, nil
	case kind.IsCount():
		count := p*16 + nibble

		return Instruction{Kind: kind, Count: count}, offset, nil
	case kind.IsSetDelta():
		magnitude := (p + 1) << (4 * nibble)

		return Instruction{Kind: kind, DeltaMagnitude: magnitude}, offset, nil
	default:
		return Instruction{}, 0, fmt.Errorf("instruction: kind %d: %w", kind, errs.ErrUnknownInstructionKind)
	}
}
