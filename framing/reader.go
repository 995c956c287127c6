package framing

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/tbf/errs"
	"github.com/arloliu/tbf/section"
)

// Reader parses the primitives Writer produces out of a byte stream. It
// needs at most one byte of lookahead (to distinguish a full-chunk marker
// from a linked-chunk marker before committing to either parse path), so it
// wraps bufio.Reader rather than carrying its own pushback buffer.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps src for primitive-level reads. If src is already a
// *bufio.Reader it is used directly instead of being double-buffered.
func NewReader(src io.Reader) *Reader {
	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}

	return &Reader{br: br}
}

// ReadMarker reads a single marker byte.
func (r *Reader) ReadMarker() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
	}

	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	b, err := r.br.Peek(1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
	}

	return b[0], nil
}

// Expect reads one marker byte and fails with errs.ErrUnexpectedMarker if it
// is not m.
func (r *Reader) Expect(m byte) error {
	got, err := r.ReadMarker()
	if err != nil {
		return err
	}

	if got != m {
		return fmt.Errorf("%w: expected 0x%02x, got 0x%02x", errs.ErrUnexpectedMarker, m, got)
	}

	return nil
}

// ReadUint32 reads a 4-byte big-endian unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	var buf [section.Uint32Size]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
	}

	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadUntilSeparator reads bytes up to and including the next separator
// byte, returning the bytes before it. A stream that ends without a
// separator is treated as implicitly separator-terminated at EOF, matching
// the reference parser's end-of-buffer behavior; this is the one place a
// short stream is not an error.
func (r *Reader) ReadUntilSeparator() ([]byte, error) {
	out, err := r.br.ReadBytes(section.Separator)
	if err != nil {
		if err == io.EOF {
			return out, nil
		}

		return nil, err
	}

	return out[:len(out)-1], nil
}
