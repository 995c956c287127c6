// Package tbf implements a binary format for interlinear glossed text (IGT)
// documents: layered collections of ordered objects carrying string
// attributes and typed cross-layer child relations.
//
// A Document is a set of named Layers, each an ordered list of LayerObjects.
// An object carries byte-valued attributes and references to child objects
// in other layers. The wire encoding is a marker-delimited byte stream with
// no magic number or version prefix and no compression; the encoder picks
// between two attribute-chunk layouts (full and linked) per attribute,
// based on how many of a layer's objects actually carry it.
//
// # Basic Usage
//
// Building and encoding a document:
//
//	import "github.com/arloliu/tbf"
//	import "github.com/arloliu/tbf/doc"
//
//	d, _ := doc.NewDocument()
//	words := doc.NewLayer(0, "words")
//	w0 := doc.NewLayerObject(0)
//	w0.SetAttrText("form", "kassa")
//	words.AddObject(w0)
//	d.AddLayer(words)
//
//	b, err := tbf.EncodeToBytes(d)
//
// Decoding it back:
//
//	got, err := tbf.DecodeFromBytes(b)
//
// # Package Structure
//
// This package is a thin convenience wrapper around package codec (the
// encode/decode state machines) and package doc (the in-memory document
// model). Advanced callers that need streaming I/O rather than a whole
// byte slice at once should use package codec directly.
package tbf

import (
	"bytes"
	"io"

	"github.com/arloliu/tbf/codec"
	"github.com/arloliu/tbf/doc"
)

// Document, Layer, LayerObject, and ChildRef are re-exported from package
// doc so that common callers need only import this package.
type (
	Document    = doc.Document
	Layer       = doc.Layer
	LayerObject = doc.LayerObject
	ChildRef    = doc.ChildRef
)

// NewDocument creates an empty Document. See doc.NewDocument for options.
func NewDocument(opts ...doc.Option) (*Document, error) {
	return doc.NewDocument(opts...)
}

// Encode writes d's wire representation to sink.
func Encode(d *Document, sink io.Writer) error {
	return codec.Encode(d, sink)
}

// Decode parses a single document from source.
func Decode(source io.Reader) (*Document, error) {
	return codec.Decode(source)
}

// EncodeToBytes encodes d into an in-memory byte slice.
func EncodeToBytes(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(d, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeFromBytes decodes a document out of an in-memory byte slice.
func DecodeFromBytes(b []byte) (*Document, error) {
	return Decode(bytes.NewReader(b))
}

// EncodeToText encodes d to its wire bytes, then maps those bytes to text
// one byte per rune (Latin-1 / ISO-8859-1 style), so the arbitrary binary
// wire form survives a textual medium (a JSON string field, a text editor)
// without any further escaping. This mapping is independent of the
// document's own declared header encoding, which only governs layer and
// attribute name bytes within the wire format, not the outer text carrier.
func EncodeToText(d *Document) (string, error) {
	b, err := EncodeToBytes(d)
	if err != nil {
		return "", err
	}

	return bytesToText(b), nil
}

// DecodeFromText inverts EncodeToText.
func DecodeFromText(text string) (*Document, error) {
	return DecodeFromBytes(textToBytes(text))
}

// bytesToText and textToBytes implement the Latin-1 identity mapping: byte
// value n maps to the rune with code point n, which is single-valued and
// lossless for the full byte range, so no third-party charset package is
// needed for it.
func bytesToText(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}

	return string(runes)
}

func textToBytes(text string) []byte {
	runes := []rune(text)
	b := make([]byte, len(runes))
	for i, r := range runes {
		b[i] = byte(r)
	}

	return b
}
