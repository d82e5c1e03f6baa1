package column

import (
	"fmt"
	"iter"

	"github.com/bcolfmt/bcol/deltastore"
	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/errs"
)

// View wraps a validated column payload for random-access and sequential
// decoding. Construction is O(1): it checks the terminator and size bound
// but does not walk the instruction stream.
type View struct {
	data  []byte // payload bytes: initial-literal instruction* 0x00 (empty if no data at all)
	store *deltastore.Store
}

// Empty is the View over a column with no appended positions at all.
var Empty = View{}

// Wrap builds the host element that embeds payload (as produced by
// Builder.Done) so it can be handed to NewView. An empty (or nil) payload
// has no initial literal to anchor the column grammar on, so Wrap returns
// element.EOO directly rather than a binary element with an empty body:
// an empty column is the absence of the element, not a zero-length one.
func Wrap(payload []byte) element.Value {
	if len(payload) == 0 {
		return element.EOO
	}

	value := make([]byte, 1+len(payload))
	value[0] = ColumnSubtype
	copy(value[1:], payload)

	return element.New(element.TypeBinary, value)
}

// NewView wraps elem, which must either be the EOO sentinel (producing an
// empty column) or a binary-subtyped element whose subtype is
// ColumnSubtype or ColumnSubtypeFramed. elem's value is
// [subtype byte][payload...]; a framed payload is checksum-verified and
// decompressed (see WrapCompressed) before validation.
func NewView(elem element.Value, opts ...ViewOption) (View, error) {
	cfg := defaultViewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if elem.EOO() {
		return View{store: deltastore.New()}, nil
	}

	if elem.Type() != element.TypeBinary {
		return View{}, fmt.Errorf("column: %w", errs.ErrWrongElementType)
	}

	raw := elem.Value()
	if len(raw) < 1 {
		return View{}, fmt.Errorf("column: %w", errs.ErrWrongSubtype)
	}

	var payload []byte
	switch raw[0] {
	case ColumnSubtype:
		payload = raw[1:]
	case ColumnSubtypeFramed:
		unwrapped, err := unwrapFramed(raw)
		if err != nil {
			return View{}, err
		}

		payload = unwrapped
	default:
		return View{}, fmt.Errorf("column: %w", errs.ErrWrongSubtype)
	}

	if len(payload) == 0 {
		return View{store: deltastore.New()}, nil
	}

	if len(payload) > cfg.maxUserSize {
		return View{}, fmt.Errorf("column: payload size %d exceeds %d: %w", len(payload), cfg.maxUserSize, errs.ErrColumnTooLarge)
	}

	if payload[len(payload)-1] != 0x00 {
		return View{}, fmt.Errorf("column: %w", errs.ErrMissingTerminator)
	}

	return View{data: payload, store: deltastore.New()}, nil
}

// NewViewFromPayload wraps an already-unwrapped column payload directly,
// skipping the host element framing. Used by tests and by code that has
// already located and unwrapped the binary element itself.
func NewViewFromPayload(payload []byte, opts ...ViewOption) (View, error) {
	cfg := defaultViewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(payload) == 0 {
		return View{store: deltastore.New()}, nil
	}

	if len(payload) > cfg.maxUserSize {
		return View{}, fmt.Errorf("column: payload size %d exceeds %d: %w", len(payload), cfg.maxUserSize, errs.ErrColumnTooLarge)
	}

	if payload[len(payload)-1] != 0x00 {
		return View{}, fmt.Errorf("column: %w", errs.ErrMissingTerminator)
	}

	return View{data: payload, store: deltastore.New()}, nil
}

// Empty reports whether v has no appended positions.
func (v View) Empty() bool {
	return len(v.data) == 0
}

// Iterator returns a positioned iterator ready to read the first decoded
// element (or already Done, if v is empty).
func (v View) Iterator() *Iterator {
	store := v.store
	if store == nil {
		store = deltastore.New()
	}

	it := &Iterator{view: v, store: store}
	it.reset()

	return it
}

// At returns the element at relative logical index i, or element.EOO if i
// falls in a gap or past the end of the decoded sequence. At is O(n) in the
// worst case: it walks forward from the start until it reaches or passes i.
func (v View) At(i int) element.Value {
	if i < 0 {
		return element.EOO
	}

	it := v.Iterator()
	for !it.Done() {
		switch {
		case it.Index() == i:
			return it.Value()
		case it.Index() > i:
			return element.EOO
		}

		if !it.Advance() {
			break
		}
	}

	return element.EOO
}

// NFields returns the number of positions the column actually holds a
// value for (excludes gaps). O(n).
func (v View) NFields() int {
	it := v.Iterator()
	if it.Done() {
		return 0
	}

	n := 1
	for it.Advance() {
		n++
	}

	return n
}

// All returns a sequence over (relative index, value) pairs in order.
func (v View) All() iter.Seq2[int, element.Value] {
	return func(yield func(int, element.Value) bool) {
		it := v.Iterator()
		for !it.Done() {
			if !yield(it.Index(), it.Value()) {
				return
			}

			if !it.Advance() {
				return
			}
		}
	}
}
