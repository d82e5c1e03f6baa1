package column

import (
	"fmt"

	"github.com/bcolfmt/bcol/deltastore"
	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
	"github.com/bcolfmt/bcol/instruction"
	"github.com/bcolfmt/bcol/internal/pool"
)

// Builder encodes a sequence of (index, value) appends into a column
// payload: initial-literal instruction* 0x00.
//
// Indices passed to Append are relative to whichever index the first call
// used: the column always begins counting from that position as its own
// index 0. Append must be called with strictly increasing indices; a gap
// between two calls becomes a Skip instruction.
//
// Builder coalesces runs the same way the underlying byte stream does: an
// unbroken run of identical values defers emission into a single trailing
// Copy(n), and an unbroken run of same-magnitude deltas defers into a
// single trailing Delta(n). The deferred run is flushed (emitted) as soon
// as the run breaks, or when Done is called.
type Builder struct {
	buf     *pool.ByteBuffer
	ownsBuf bool
	start   int // offset of this column's payload within buf

	started  bool
	finished bool

	last      element.Value
	delta     uint64
	baseIndex int
	index     int // next relative index expected
	deferrals int64
}

// NewBuilder creates a Builder backed by a freshly pooled buffer.
func NewBuilder(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := pool.GetColumnBuffer()
	buf.Grow(cfg.initialCapacity)

	return &Builder{buf: buf, ownsBuf: true}
}

// NewBuilderWithBuffer creates a Builder that appends directly to an
// existing buffer, starting at its current length. The caller retains
// ownership of buf and is responsible for returning it to a pool, if
// pooled, once done with it.
func NewBuilderWithBuffer(buf *pool.ByteBuffer) *Builder {
	return &Builder{buf: buf, start: buf.Len()}
}

// Release returns the builder's internal buffer to the shared pool, if the
// builder owns it. Callers must not use the builder or any byte slice it
// has returned after calling Release.
func (b *Builder) Release() {
	if b.ownsBuf {
		pool.PutColumnBuffer(b.buf)
		b.buf = nil
	}
}

// Append records elem at the given index. Indices are relative: the
// first call's index becomes the column's own index 0, and every
// subsequent call's index must be strictly greater than the one before.
func (b *Builder) Append(index int, elem element.Value) error {
	if elem.EOO() {
		return fmt.Errorf("column: cannot append the EOO sentinel as a value")
	}

	if b.finished {
		if b.started {
			b.buf.SetLength(b.buf.Len() - 1) // undo terminator, resume encoding
		}

		b.finished = false
	}

	if !b.started {
		b.baseIndex = index
		b.appendLiteral(elem)
		b.last = elem
		b.delta = 0
		b.index = 1
		b.started = true

		return nil
	}

	rel := index - b.baseIndex
	if rel < b.index {
		return fmt.Errorf("column: index %d (relative %d) not greater than last appended relative index %d: %w",
			index, rel, b.index-1, errs.ErrNonMonotonicIndex)
	}

	if rel > b.index {
		b.flushDeferrals()
		b.appendInstruction(instruction.Skip(uint64(rel - b.index)))
		b.index = rel
	}

	switch {
	case elem.BinaryEqualValues(b.last):
		b.flushNegative()
		b.deferrals++
		b.index++

		return nil

	default:
		if d := deltastore.CalculateDelta(b.last, elem); d != 0 {
			if d == b.delta {
				b.flushPositive()
				b.deferrals--
				b.last = elem
				b.index++

				return nil
			}

			if chosen, ok := b.minimalDeltaInstruction(d); ok && chosen.SizeBytes() < elem.Size() {
				b.flushDeferrals()
				b.appendInstruction(chosen)
				b.delta = d
				b.last = elem
				b.index++

				return nil
			}
		}
	}

	b.flushDeferrals()
	b.appendLiteral(elem)
	b.last = elem
	b.delta = 0
	b.index++

	return nil
}

// minimalDeltaInstruction returns whichever of SetDelta(d)/SetNegDelta(-d)
// serializes smaller, preferring SetDelta on a tie.
func (b *Builder) minimalDeltaInstruction(d uint64) (instruction.Instruction, bool) {
	if d == 0 {
		return instruction.Instruction{}, false
	}

	pos := instruction.SetDelta(d)
	neg := instruction.SetNegDelta(negate(d))

	if neg.SizeBytes() < pos.SizeBytes() {
		return neg, true
	}

	return pos, true
}

// Done finalizes the payload by flushing any deferred run and appending
// the EOO terminator, and returns the full payload bytes written so far
// (including the terminator). Done is idempotent, and a further Append
// call transparently resumes encoding by removing the terminator.
//
// A Builder that has never been Appended to has no initial literal to
// anchor the grammar on, so Done returns nil: the column this represents
// is not a binary-subtyped element with an empty payload, it is the
// absence of the element entirely (see Wrap).
func (b *Builder) Done() []byte {
	if !b.started {
		b.finished = true

		return nil
	}

	if !b.finished {
		b.flushDeferrals()
		b.buf.Grow(1)
		b.buf.MustWriteByte(0x00)
		b.finished = true
	}

	return b.buf.Bytes()[b.start:]
}

// Len returns the relative index one past the last appended position (0
// before the first Append). Skipped gaps are counted, so Len equals the
// NFields of the finalized column only when no Skip was emitted.
func (b *Builder) Len() int {
	return b.index
}

func (b *Builder) flushDeferrals() {
	switch {
	case b.deferrals > 0:
		b.appendInstruction(instruction.Copy(uint64(b.deferrals)))
	case b.deferrals < 0:
		b.appendInstruction(instruction.Delta(uint64(-b.deferrals)))
	}

	b.deferrals = 0
}

// flushPositive flushes a deferred Copy run before switching into a delta
// continuation.
func (b *Builder) flushPositive() {
	if b.deferrals > 0 {
		b.appendInstruction(instruction.Copy(uint64(b.deferrals)))
		b.deferrals = 0
	}
}

// flushNegative flushes a deferred Delta run before switching into a copy
// continuation.
func (b *Builder) flushNegative() {
	if b.deferrals < 0 {
		b.appendInstruction(instruction.Delta(uint64(-b.deferrals)))
		b.deferrals = 0
	}
}

func (b *Builder) appendInstruction(insn instruction.Instruction) {
	b.buf.Grow(insn.SizeBytes())
	b.buf.B = insn.Append(b.buf.B)
}

func (b *Builder) appendLiteral(elem element.Value) {
	b.buf.Grow(elem.Size())
	b.buf.MustWrite(elem.RawData())
}
