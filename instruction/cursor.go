package instruction

import "github.com/bcolfmt/bcol/errs"

// Cursor is a position within a column's instruction stream. It is held by
// value, not by reference into the column view's private state: the
// column iterator builds its own Cursor over the view's payload with
// NewCursor and owns it.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor creates a Cursor positioned at offset within data.
func NewCursor(data []byte, offset int) Cursor {
	return Cursor{data: data, offset: offset}
}

// Offset returns the cursor's current byte offset within its data.
func (c Cursor) Offset() int {
	return c.offset
}

// AtEOO reports whether the byte at the cursor's current position is the
// EOO terminator. Callers must check this before calling Next.
func (c Cursor) AtEOO() bool {
	return c.offset >= len(c.data) || c.data[c.offset] == 0
}

// Next parses the instruction at the cursor's current position and
// advances the cursor past it (but not past any embedded literal element
// bytes — see Remaining and Advance). Returns the parsed instruction.
func (c *Cursor) Next() (Instruction, error) {
	if c.AtEOO() {
		return Instruction{}, errs.ErrTruncatedInstruction
	}

	insn, n, err := Parse(c.data[c.offset:])
	if err != nil {
		return Instruction{}, err
	}

	c.offset += n

	return insn, nil
}

// Rewind moves the cursor back by n bytes. Used by the decoder to
// re-include a literal instruction's type byte as the start of its
// embedded element.
func (c *Cursor) Rewind(n int) {
	c.offset -= n
}

// Advance moves the cursor forward by n bytes, typically past an embedded
// literal element's bytes.
func (c *Cursor) Advance(n int) {
	c.offset += n
}

// Remaining returns the unconsumed tail of the cursor's data.
func (c Cursor) Remaining() []byte {
	return c.data[c.offset:]
}
