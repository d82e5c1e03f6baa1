package deltastore

import (
	"bytes"
	"fmt"

	"github.com/bcolfmt/bcol/element"
	"github.com/bcolfmt/bcol/endian"
	"github.com/bcolfmt/bcol/errs"
)

// littleEndian is used for the low-level value-delta arithmetic, which is
// always little-endian-based regardless of host byte order.
var littleEndian = endian.GetLittleEndianEngine()

// Store is an append-only arena of materialized elements produced by delta
// application. It owns the byte slices it hands out: addresses are stable
// across growth because growth only ever appends a new slot, never
// reallocates an existing one.
//
// Store is not safe for concurrent mutation; a column's iterators share
// one Store and must be driven from a single goroutine at a time.
type Store struct {
	slots []element.Value
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Len returns the number of materialized slots currently in the store.
func (s *Store) Len() int {
	return len(s.slots)
}

// At returns the slot at deltaIndex. It panics if deltaIndex is out of
// range; callers are expected to only ever read indices they (or another
// iterator over the same column) have previously written via ApplyDelta.
func (s *Store) At(deltaIndex int) element.Value {
	return s.slots[deltaIndex]
}

// ApplyDelta computes base's value plus delta (mod 2^64, truncated to
// base's value width) and returns the resulting element.
//
// If deltaIndex equals the store's current length, the result is appended
// as a new slot. If deltaIndex is less than the current length, the
// already-materialized slot at that index is compared against the freshly
// computed result: any mismatch is a violation of the decoder determinism
// invariant and is reported as a CorruptionError, not a returned error,
// since it indicates either data corruption or a decoder bug rather than
// an expected failure mode.
func (s *Store) ApplyDelta(deltaIndex int, base element.Value, delta uint64) (element.Value, error) {
	if base.ValueSize() == 0 || base.ValueSize() > element.MaxValueSize {
		return element.Value{}, fmt.Errorf("deltastore: base value size %d: %w", base.ValueSize(), errs.ErrValueTooLarge)
	}

	if deltaIndex < 0 || deltaIndex > len(s.slots) {
		return element.Value{}, fmt.Errorf("deltastore: delta index %d out of range (len=%d)", deltaIndex, len(s.slots))
	}

	result := element.New(base.Type(), computeDeltaBytes(base, delta))

	if deltaIndex == len(s.slots) {
		s.slots = append(s.slots, result)

		return result, nil
	}

	existing := s.slots[deltaIndex]
	if existing.Type() != result.Type() || !bytes.Equal(existing.Value(), result.Value()) {
		panic(&errs.CorruptionError{
			Msg: fmt.Sprintf("delta store determinism violated at index %d", deltaIndex),
		})
	}

	return existing, nil
}

// CalculateDelta returns a nonzero delta such that
// ApplyDelta(_, base, CalculateDelta(base, modified)) reproduces modified's
// bytes, or 0 if no such delta exists: base and modified differ in type,
// differ in value width, have a value width outside [1, MaxValueSize], or
// are identical (identity is encoded by the column builder as a Copy
// instruction, never a delta).
func CalculateDelta(base, modified element.Value) uint64 {
	if base.Type() != modified.Type() {
		return 0
	}

	vs := base.ValueSize()
	if vs == 0 || vs > element.MaxValueSize || vs != modified.ValueSize() {
		return 0
	}

	baseVal := base.Uint64LE()
	modVal := modified.Uint64LE()

	delta := modVal - baseVal // wraps mod 2^64, per Go's unsigned arithmetic
	if delta == 0 {
		return 0
	}

	return delta
}

// computeDeltaBytes returns the low base.ValueSize() little-endian bytes of
// (base's value + delta), computed mod 2^64.
func computeDeltaBytes(base element.Value, delta uint64) []byte {
	sum := base.Uint64LE() + delta

	var buf [8]byte
	littleEndian.PutUint64(buf[:], sum)

	out := make([]byte, base.ValueSize())
	copy(out, buf[:])

	return out
}
