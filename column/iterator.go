package column

import (
	"github.com/bcolfmt/bcol/deltastore"
	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
	"github.com/bcolfmt/bcol/instruction"
)

// Iterator walks a View's decoded logical sequence forward, one position
// at a time. It is not safe for concurrent use; a View's iterators share
// its delta store and must not be driven from multiple goroutines at
// once.
//
// Any structural corruption discovered while stepping (a truncated
// instruction stream, a delta applied to an oversized value, a
// determinism violation in the shared delta store) is reported as a
// panic carrying an *errs.CorruptionError, never as a returned error: by
// the time an Iterator exists, View construction has already validated
// the payload's outer shape, so a failure here means the stream's inner
// structure disagrees with that shape.
type Iterator struct {
	view  View
	store *deltastore.Store

	cursor instruction.Cursor
	cur    element.Value

	// count > 0: that many further Copy repetitions of cur remain.
	// count < 0: that many further Delta repetitions remain (cur advances
	// by delta on every Advance while count < 0).
	// count == 0: the next Advance must consume a fresh instruction.
	count int64

	index      int
	delta      uint64
	deltaIndex int

	exhausted bool
}

func (it *Iterator) reset() {
	if it.view.Empty() {
		it.cursor = instruction.NewCursor(nil, 0)
		it.exhausted = true

		return
	}

	elem, n, err := element.ParseElement(it.view.data)
	if err != nil {
		panic(&errs.CorruptionError{Msg: "malformed initial literal", Err: err})
	}

	it.cur = elem
	it.count = 0
	it.index = 0
	it.delta = 0
	it.deltaIndex = 0
	it.cursor = instruction.NewCursor(it.view.data, n)
	it.exhausted = false
}

// Done reports whether the iterator has no current element to read: the
// stream has been fully consumed (equivalent to it == end()). A freshly
// constructed, non-empty iterator is never Done: its current element is
// the initial literal.
func (it *Iterator) Done() bool {
	return it.exhausted
}

// Index returns the current element's relative logical index. Valid only
// when !Done().
func (it *Iterator) Index() int {
	return it.index
}

// Value returns the current element. Valid only when !Done().
func (it *Iterator) Value() element.Value {
	return it.cur
}

// Advance moves to the next logical position, applying any pending
// Copy/Delta repetitions or consuming fresh instructions (including Skips,
// which advance Index without producing an intervening Value) as needed.
// It returns false once the stream is exhausted.
func (it *Iterator) Advance() bool {
	for it.count == 0 {
		if it.cursor.AtEOO() {
			it.exhausted = true

			return false
		}

		it.stepInstruction()
	}

	it.index++

	switch {
	case it.count > 0:
		it.count--
	default:
		it.count++
		it.cur = it.applyDelta()
	}

	return true
}

// NextDifferent skips past any remaining Copy repetitions of the current
// value in one step, then advances once more, landing on the first
// position (if any) whose value differs from the current one. Pending
// Delta repetitions are not collapsed, since every Delta repetition
// already produces a distinct value.
func (it *Iterator) NextDifferent() bool {
	if it.count > 0 {
		it.index += int(it.count)
		it.count = 0
	}

	return it.Advance()
}

// Equal reports whether it and other occupy the same structural position:
// identical instruction-stream offset and identical pending repetition
// count. Two iterators positioned this way will always observe the same
// Index and Value going forward.
func (it *Iterator) Equal(other *Iterator) bool {
	return it.cursor.Offset() == other.cursor.Offset() && it.count == other.count
}

func (it *Iterator) applyDelta() element.Value {
	result, err := it.store.ApplyDelta(it.deltaIndex, it.cur, it.delta)
	if err != nil {
		panic(&errs.CorruptionError{Msg: "delta application failed", Err: err})
	}

	it.deltaIndex++

	return result
}

func (it *Iterator) stepInstruction() {
	insn, err := it.cursor.Next()
	if err != nil {
		panic(&errs.CorruptionError{Msg: "malformed instruction stream", Err: err})
	}

	switch {
	case insn.Kind.IsLiteral():
		it.cursor.Rewind(1)

		elem, n, perr := element.ParseElement(it.cursor.Remaining())
		if perr != nil {
			panic(&errs.CorruptionError{Msg: "malformed literal element", Err: perr})
		}

		it.cursor.Advance(n)
		it.cur = elem
		it.count = 1
		it.delta = 0

	case insn.Kind == instruction.KindSkip:
		it.index += int(insn.Count)
		it.count = 0

	case insn.Kind == instruction.KindCopy:
		it.count = int64(insn.Count)

	case insn.Kind == instruction.KindDelta:
		it.count = -int64(insn.Count)

	case insn.Kind == instruction.KindSetDelta:
		it.delta = insn.DeltaMagnitude
		it.count = 1
		it.cur = it.applyDelta()

	case insn.Kind == instruction.KindSetNegDelta:
		it.delta = negate(insn.DeltaMagnitude)
		it.count = 1
		it.cur = it.applyDelta()

	default:
		panic(&errs.CorruptionError{Msg: "unrecognized instruction kind"})
	}
}

// negate returns -m mod 2^64, computed via two's-complement negation.
func negate(m uint64) uint64 {
	return ^m + 1
}
