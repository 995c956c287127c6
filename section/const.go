// Package section declares the wire-format constants shared by the
// encoder and decoder: the marker byte table and fixed field widths.
package section

// Marker bytes bracket every structural boundary in the stream. Values are
// chosen to be distinct from each other and outside the printable-ASCII
// range any realistic layer/attribute name would start with, since the
// decoder only ever peeks a marker byte where the grammar says a marker can
// occur (never inside a length-prefixed or separator-terminated field).
const (
	Separator byte = 0x00 // terminates a variable-length byte run

	HeaderStart byte = 0x01
	HeaderEnd   byte = 0x02

	LayersStart byte = 0x03
	LayersEnd   byte = 0x04
	LayerStart  byte = 0x05
	LayerEnd    byte = 0x06

	RelationsStart byte = 0x07
	RelationsEnd   byte = 0x08
	RelationStart  byte = 0x09
	RelationEnd    byte = 0x0A

	AttrsStart byte = 0x0B
	AttrsEnd   byte = 0x0C

	ChunkFullStart   byte = 0x0D
	ChunkLinkedStart byte = 0x0E
	ChunkEnd         byte = 0x0F
)

// Uint32Size is the fixed width, in bytes, of every integer field on the wire.
const Uint32Size = 4

// DefaultEncoding is the header encoding used when a Document is created
// without an explicit override.
const DefaultEncoding = "utf-8"
