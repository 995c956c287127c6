// Package errs declares the sentinel errors returned by tbf's encode and
// decode paths.
//
// Callers distinguish failure kinds with errors.Is; call sites wrap a
// sentinel with additional context via fmt.Errorf("%w: ...", errs.ErrX, ...).
package errs

import "errors"

// Decode errors.
var (
	// ErrUnexpectedMarker means the stream held a byte other than the
	// marker the decoder's state machine expected next.
	ErrUnexpectedMarker = errors.New("tbf: unexpected marker")

	// ErrUnexpectedChunkMarker means a one-byte lookahead in the attrs
	// section produced neither CHUNK_FULL_START nor CHUNK_LINKED_START.
	ErrUnexpectedChunkMarker = errors.New("tbf: unexpected chunk marker")

	// ErrTruncatedStream means the source ran out of bytes in the middle
	// of a fixed-width field (a marker or a u32).
	ErrTruncatedStream = errors.New("tbf: truncated stream")

	// ErrBadTextEncoding means a byte run could not be decoded under the
	// header's declared encoding.
	ErrBadTextEncoding = errors.New("tbf: bad text encoding")

	// ErrOutOfRangeObjectID means a relation or linked-chunk entry named
	// an object index outside the materialized layer.
	ErrOutOfRangeObjectID = errors.New("tbf: object id out of range")

	// ErrUnknownLayerID means a relation or chunk named a layer id that
	// was not declared in the layers section.
	ErrUnknownLayerID = errors.New("tbf: unknown layer id")
)

// Encode errors.
var (
	// ErrSeparatorInString means an encoded string's bytes contain the
	// separator byte, which would make the stream unparseable.
	ErrSeparatorInString = errors.New("tbf: string contains separator byte")

	// ErrBadEncoding means a string could not be encoded under the
	// declared header encoding.
	ErrBadEncoding = errors.New("tbf: value not representable in declared encoding")

	// ErrIntegerOverflow means a count or id exceeds the wire format's
	// 32-bit unsigned range.
	ErrIntegerOverflow = errors.New("tbf: count or id exceeds uint32 range")

	// ErrDanglingChild means a child reference targets an object whose
	// layer does not belong to the document being encoded.
	ErrDanglingChild = errors.New("tbf: child reference targets an object outside the document")
)
