// Package doc defines the in-memory document model a tbf stream serializes:
// a Document of named Layers, each holding an ordered list of LayerObjects
// that carry string-valued attributes and child references into other
// layers.
//
// Child references are stored as (layer id, object id) pairs rather than
// pointers, so the object graph never needs pointer-cycle collection and
// maps one-to-one onto the wire's relation-group encoding.
package doc

import "github.com/arloliu/tbf/internal/options"

// Option configures a Document built via NewDocument.
type Option = options.Option[*Document]

// WithEncoding overrides the header's declared text encoding. Defaults to
// "utf-8" when not supplied.
func WithEncoding(name string) Option {
	return options.NoError(func(d *Document) {
		d.Header.Encoding = name
	})
}

// Header is the single-attribute document preamble: the text encoding used
// to decode every subsequent string field (layer names, attribute names).
type Header struct {
	Encoding string
}

// Document owns an ordered list of Layers and a Header, plus a secondary
// id->Layer index for O(1) lookup.
//
// A Document built by hand via the public API may assign any non-negative
// id to a Layer; a Document produced by Decode always has layer.ID equal to
// the layer's position in the list, because the decoder assigns ids by
// position (see the codec package).
type Document struct {
	Header *Header
	Layers []*Layer

	layerIndex map[uint32]*Layer
}

// NewDocument creates an empty Document with a default ("utf-8") header,
// applying any options in order.
func NewDocument(opts ...Option) (*Document, error) {
	d := &Document{
		Header:     &Header{Encoding: "utf-8"},
		layerIndex: make(map[uint32]*Layer),
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// AddLayer appends layer to the document and registers it in the id index.
func (d *Document) AddLayer(layer *Layer) {
	d.Layers = append(d.Layers, layer)
	d.layerIndex[layer.ID] = layer
}

// AddLayers appends each layer in order via AddLayer.
func (d *Document) AddLayers(layers []*Layer) {
	for _, l := range layers {
		d.AddLayer(l)
	}
}

// LayerByID looks up a layer by its id. ok is false if no such layer was
// added to this document.
func (d *Document) LayerByID(id uint32) (*Layer, bool) {
	l, ok := d.layerIndex[id]
	return l, ok
}

// AllObjects returns every object across every layer in stable
// (layer-order, object-order) sequence.
func (d *Document) AllObjects() []*LayerObject {
	var out []*LayerObject
	for _, layer := range d.Layers {
		out = append(out, layer.Objects...)
	}

	return out
}
