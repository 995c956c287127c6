// Package framing implements the low-level byte-level primitives the wire
// format is built from: single-byte markers, fixed-width big-endian u32
// integers, and separator-terminated byte runs.
//
// Writer and Reader know nothing about documents, layers, or chunks — that
// grammar lives in package codec. This mirrors mebo's own split between its
// endian engine (byte order only) and its blob encoders (domain grammar).
package framing

import (
	"io"

	"github.com/arloliu/tbf/endian"
	"github.com/arloliu/tbf/errs"
	"github.com/arloliu/tbf/internal/pool"
	"github.com/arloliu/tbf/section"
)

// Writer accumulates a document's wire bytes in a pooled buffer before they
// are flushed to the caller's sink in one WriteTo call.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a buffer drawn from the document
// buffer pool. Callers must call Release once done with the Writer.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetDocBuffer(),
		engine: endian.GetBigEndianEngine(),
	}
}

// WriteMarker writes a single structural marker byte.
func (w *Writer) WriteMarker(m byte) {
	w.buf.MustWrite([]byte{m})
}

// WriteUint32 writes n as a 4-byte big-endian unsigned integer.
func (w *Writer) WriteUint32(n uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, n)
}

// WriteSeparator writes the separator byte terminating a variable-length
// run.
func (w *Writer) WriteSeparator() {
	w.buf.MustWrite([]byte{section.Separator})
}

// WriteRawText writes b with no length prefix and no terminator. It fails
// with errs.ErrSeparatorInString if b contains the separator byte, since
// that would make the run unparseable on decode.
func (w *Writer) WriteRawText(b []byte) error {
	for _, c := range b {
		if c == section.Separator {
			return errs.ErrSeparatorInString
		}
	}

	w.buf.MustWrite(b)

	return nil
}

// Len returns the number of bytes buffered so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteTo flushes the buffered bytes to sink.
func (w *Writer) WriteTo(sink io.Writer) error {
	_, err := w.buf.WriteTo(sink)
	return err
}

// Release returns the Writer's buffer to the pool. Safe to call once;
// the Writer must not be used afterward.
func (w *Writer) Release() {
	pool.PutDocBuffer(w.buf)
	w.buf = nil
}
