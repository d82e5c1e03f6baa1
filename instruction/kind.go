package instruction

// Kind identifies one of the seven instruction forms the column wire
// format supports. The numeric values match the op byte's upper nibble.
type Kind uint8

const (
	// KindLiteral0 carries a literal element whose type byte's upper
	// nibble is 0 (type values 0x00-0x0F).
	KindLiteral0 Kind = 0
	// KindLiteral1 carries a literal element whose type byte's upper
	// nibble is 1 (type values 0x10-0x1F). Exists only because literal
	// type bytes can fall in either nibble group.
	KindLiteral1 Kind = 1
	// KindSkip advances the logical index by Count positions without
	// emitting any element.
	KindSkip Kind = 2
	// KindDelta emits Count copies of "current element + current delta",
	// applying the delta once per emitted copy.
	KindDelta Kind = 3
	// KindCopy emits Count copies of the current element, unchanged.
	KindCopy Kind = 4
	// KindSetNegDelta establishes a new negative prevailing delta
	// (-DeltaMagnitude) and emits one element with it applied.
	KindSetNegDelta Kind = 5
	// KindSetDelta establishes a new positive prevailing delta
	// (+DeltaMagnitude) and emits one element with it applied.
	KindSetDelta Kind = 6
)

// IsLiteral reports whether k is one of the two literal kinds.
func (k Kind) IsLiteral() bool {
	return k == KindLiteral0 || k == KindLiteral1
}

// IsCount reports whether k carries a Count argument (Skip, Delta, Copy).
func (k Kind) IsCount() bool {
	return k == KindSkip || k == KindDelta || k == KindCopy
}

// IsSetDelta reports whether k establishes a new prevailing delta
// (SetDelta, SetNegDelta).
func (k Kind) IsSetDelta() bool {
	return k == KindSetDelta || k == KindSetNegDelta
}

func (k Kind) String() string {
	switch k {
	case KindLiteral0:
		return "Literal0"
	case KindLiteral1:
		return "Literal1"
	case KindSkip:
		return "Skip"
	case KindDelta:
		return "Delta"
	case KindCopy:
		return "Copy"
	case KindSetNegDelta:
		return "SetNegDelta"
	case KindSetDelta:
		return "SetDelta"
	default:
		return "Unknown"
	}
}

// LiteralTypeKind returns the instruction Kind a literal element's type
// byte belongs to, based on its upper nibble.
func LiteralTypeKind(typeByte byte) Kind {
	if typeByte>>4 == 1 {
		return KindLiteral1
	}

	return KindLiteral0
}
