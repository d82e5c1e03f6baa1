package instruction

import (
	"fmt"
	"strings"

	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
)

// Disassemble walks a column payload (the initial literal element, which
// it renders as a Literal, then the instruction stream) and renders each
// instruction symbolically,
// one per line, stopping at the EOO terminator. It is a testing and
// debugging aid only: neither column.Builder nor column.Iterator calls it.
func Disassemble(data []byte) (string, error) {
	var sb strings.Builder

	offset := 0
	for offset < len(data) && data[offset] != 0 {
		insn, n, err := Parse(data[offset:])
		if err != nil {
			return sb.String(), err
		}

		switch {
		case insn.Kind.IsLiteral():
			elem, elemSize, err := element.ParseElement(data[offset:])
			if err != nil {
				return sb.String(), fmt.Errorf("disassemble: literal at offset %d: %w", offset, err)
			}

			fmt.Fprintf(&sb, "Literal(type=0x%02x) len=%d\n", insn.LiteralType, elem.Size())
			offset += elemSize
		case insn.Kind == KindSkip:
			fmt.Fprintf(&sb, "Skip(%d)\n", insn.Count)
			offset += n
		case insn.Kind == KindCopy:
			fmt.Fprintf(&sb, "Copy(%d)\n", insn.Count)
			offset += n
		case insn.Kind == KindDelta:
			fmt.Fprintf(&sb, "Delta(%d)\n", insn.Count)
			offset += n
		case insn.Kind == KindSetDelta:
			fmt.Fprintf(&sb, "SetDelta(+%d)\n", insn.DeltaMagnitude)
			offset += n
		case insn.Kind == KindSetNegDelta:
			fmt.Fprintf(&sb, "SetNegDelta(-%d)\n", insn.DeltaMagnitude)
			offset += n
		default:
			return sb.String(), errs.ErrUnknownInstructionKind
		}
	}

	if offset < len(data) && data[offset] == 0 {
		sb.WriteString("EOO\n")
	}

	return sb.String(), nil
}
