// Package errs defines the sentinel errors returned by the bcol packages.
//
// Every structural or precondition failure the codec can detect has a
// dedicated sentinel here so callers can use errors.Is against a stable
// value instead of matching on error strings. Call sites wrap these with
// additional context via fmt.Errorf("...: %w", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrMissingTerminator is returned when a column's byte stream does not
	// end in the EOO terminator.
	ErrMissingTerminator = errors.New("bcol: column stream missing EOO terminator")

	// ErrTruncatedFrame is returned when a WrapCompressed envelope's header
	// or checksum bytes run past the end of the element's value.
	ErrTruncatedFrame = errors.New("bcol: column frame envelope truncated")

	// ErrColumnTooLarge is returned when a column payload exceeds the
	// host-configured MaxUserSize.
	ErrColumnTooLarge = errors.New("bcol: column payload exceeds maximum user size")

	// ErrNonEmptyFieldName is returned when an element embedded in a column
	// carries a non-empty field name.
	ErrNonEmptyFieldName = errors.New("bcol: column element has non-empty field name")

	// ErrWrongElementType is returned when the wrapped element is not a
	// binary-subtyped column element.
	ErrWrongElementType = errors.New("bcol: element is not a binary subtyped column")

	// ErrWrongSubtype is returned when the wrapped binary element's subtype
	// is not the column subtype.
	ErrWrongSubtype = errors.New("bcol: binary element subtype is not column subtype")

	// ErrTruncatedInstruction is returned when an instruction's prefix bytes
	// run past the end of the stream without reaching an op byte.
	ErrTruncatedInstruction = errors.New("bcol: instruction stream truncated")

	// ErrTruncatedLiteral is returned when a literal instruction's element
	// bytes run past the end of the stream.
	ErrTruncatedLiteral = errors.New("bcol: literal element truncated")

	// ErrValueTooLarge is returned when a value's byte width exceeds
	// element.MaxValueSize and delta compression is attempted on it.
	ErrValueTooLarge = errors.New("bcol: element value exceeds maximum delta-compressible width")

	// ErrNonMonotonicIndex is returned when Builder.Append is called with an
	// index not strictly greater than the last appended index.
	ErrNonMonotonicIndex = errors.New("bcol: append index is not monotonically increasing")

	// ErrChecksumMismatch is returned when a column's stored checksum does
	// not match the checksum computed over its bytes.
	ErrChecksumMismatch = errors.New("bcol: column checksum mismatch")

	// ErrUnsupportedCompression is returned when a compression type tag is
	// not one of the codecs compress.GetCodec knows about.
	ErrUnsupportedCompression = errors.New("bcol: unsupported compression type")

	// ErrUnknownInstructionKind is returned when an op byte's upper nibble
	// does not correspond to any of the seven defined instruction kinds.
	ErrUnknownInstructionKind = errors.New("bcol: unknown instruction kind")
)

// CorruptionError is the panic value used for the single class of failure
// treated as a fail-fast assertion rather than a returned error: a decoder
// observing that its own invariants have been violated mid-iteration (e.g.
// the delta store's determinism invariant, a malformed instruction or
// literal met while stepping, or a delta applied to an oversized value).
// Callers that need to convert this
// into an error at a process boundary can recover and wrap it.
type CorruptionError struct {
	Msg string
	Err error
}

func (e *CorruptionError) Error() string {
	if e.Err != nil {
		return "bcol: corruption: " + e.Msg + ": " + e.Err.Error()
	}

	return "bcol: corruption: " + e.Msg
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}
