package framing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tbf/errs"
	"github.com/arloliu/tbf/section"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteMarker(section.HeaderStart)
	w.WriteUint32(42)
	require.NoError(t, w.WriteRawText([]byte("utf-8")))
	w.WriteSeparator()
	w.WriteMarker(section.HeaderEnd)

	var buf bytes.Buffer
	require.NoError(t, w.WriteTo(&buf))

	r := NewReader(&buf)
	require.NoError(t, r.Expect(section.HeaderStart))

	n, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(42), n)

	s, err := r.ReadUntilSeparator()
	require.NoError(t, err)
	require.Equal(t, []byte("utf-8"), s)

	require.NoError(t, r.Expect(section.HeaderEnd))
}

func TestWriter_WriteRawText_RejectsSeparator(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	err := w.WriteRawText([]byte{'a', section.Separator, 'b'})
	require.ErrorIs(t, err, errs.ErrSeparatorInString)
}

func TestReader_Expect_Mismatch(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{section.LayerEnd}))
	err := r.Expect(section.LayerStart)
	require.ErrorIs(t, err, errs.ErrUnexpectedMarker)
}

func TestReader_ReadMarker_TruncatedStream(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadMarker()
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestReader_ReadUint32_TruncatedStream(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x01}))
	_, err := r.ReadUint32()
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
	require.True(t, errors.Is(err, errs.ErrTruncatedStream))
}

func TestReader_ReadUntilSeparator_ImplicitAtEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("no-terminator")))
	s, err := r.ReadUntilSeparator()
	require.NoError(t, err)
	require.Equal(t, []byte("no-terminator"), s)
}

func TestReader_ReadUntilSeparator_Empty(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{section.Separator, 'x'}))
	s, err := r.ReadUntilSeparator()
	require.NoError(t, err)
	require.Empty(t, s)
}

func TestReader_PeekByte_DoesNotConsume(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{section.ChunkFullStart}))

	b, err := r.PeekByte()
	require.NoError(t, err)
	require.Equal(t, section.ChunkFullStart, b)

	got, err := r.ReadMarker()
	require.NoError(t, err)
	require.Equal(t, section.ChunkFullStart, got)
}
