package codec

import (
	"fmt"
	"io"

	"github.com/arloliu/tbf/doc"
	"github.com/arloliu/tbf/errs"
	"github.com/arloliu/tbf/framing"
	"github.com/arloliu/tbf/internal/pool"
	"github.com/arloliu/tbf/section"
)

// objectSlicePool amortizes the scratch allocation used to materialize each
// layer's objects during decode; the pooled slice is copied into a
// right-sized, pool-independent slice before being handed to the document,
// so a long-lived Document never pins an oversized pooled backing array.
var objectSlicePool = pool.NewSlice[*doc.LayerObject]()

// Decoder parses a single tbf stream into a doc.Document.
type Decoder struct {
	r              *framing.Reader
	document       *doc.Document
	encoding       string
	objectsByLayer map[uint32][]*doc.LayerObject
}

// NewDecoder creates a Decoder reading from source.
func NewDecoder(source io.Reader) *Decoder {
	return &Decoder{r: framing.NewReader(source)}
}

// Decode parses a single tbf stream read from source into a Document. It is
// a package-level convenience around NewDecoder(source).Decode().
func Decode(source io.Reader) (*doc.Document, error) {
	return NewDecoder(source).Decode()
}

// Decode runs the header/layers/relations/attrs state machine once over the
// Decoder's source and returns the resulting Document.
func (d *Decoder) Decode() (*doc.Document, error) {
	document, err := doc.NewDocument()
	if err != nil {
		return nil, err
	}

	d.document = document
	d.objectsByLayer = make(map[uint32][]*doc.LayerObject)

	if err := d.parseHeader(); err != nil {
		return nil, err
	}
	if err := d.parseLayers(); err != nil {
		return nil, err
	}
	if err := d.parseRelations(); err != nil {
		return nil, err
	}
	if err := d.parseAttrs(); err != nil {
		return nil, err
	}

	return d.document, nil
}

// parseHeader reads the declared encoding name as raw bytes: it is always
// written (and read back) as the literal bytes of a Go string, since no
// encoding is in force yet while this field is being parsed.
func (d *Decoder) parseHeader() error {
	if err := d.r.Expect(section.HeaderStart); err != nil {
		return err
	}

	raw, err := d.r.ReadUntilSeparator()
	if err != nil {
		return err
	}

	d.encoding = string(raw)
	d.document.Header.Encoding = d.encoding

	return d.r.Expect(section.HeaderEnd)
}

func (d *Decoder) parseLayers() error {
	if err := d.r.Expect(section.LayersStart); err != nil {
		return err
	}

	layerCount, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	for i := uint32(0); i < layerCount; i++ {
		if err := d.r.Expect(section.LayerStart); err != nil {
			return err
		}

		rawName, err := d.r.ReadUntilSeparator()
		if err != nil {
			return err
		}

		name, err := decodeString(rawName, d.encoding)
		if err != nil {
			return err
		}

		objCount, err := d.r.ReadUint32()
		if err != nil {
			return err
		}

		layer := doc.NewLayer(i, name)

		scratch, release := objectSlicePool.Get(int(objCount))
		for idx := range scratch {
			scratch[idx] = doc.NewLayerObject(uint32(idx))
		}

		objs := make([]*doc.LayerObject, objCount)
		copy(objs, scratch)
		release()

		layer.Objects = objs
		for _, obj := range objs {
			obj.LayerID = i
		}

		d.document.AddLayer(layer)
		d.objectsByLayer[i] = objs

		if err := d.r.Expect(section.LayerEnd); err != nil {
			return err
		}
	}

	return d.r.Expect(section.LayersEnd)
}

func (d *Decoder) parseRelations() error {
	if err := d.r.Expect(section.RelationsStart); err != nil {
		return err
	}

	groupCount, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	for i := uint32(0); i < groupCount; i++ {
		if err := d.r.Expect(section.RelationStart); err != nil {
			return err
		}

		parentLayerID, err := d.r.ReadUint32()
		if err != nil {
			return err
		}

		childLayerID, err := d.r.ReadUint32()
		if err != nil {
			return err
		}

		pairCount, err := d.r.ReadUint32()
		if err != nil {
			return err
		}

		parentObjs, ok := d.objectsByLayer[parentLayerID]
		if !ok {
			return fmt.Errorf("%w: %d", errs.ErrUnknownLayerID, parentLayerID)
		}

		childObjs, ok := d.objectsByLayer[childLayerID]
		if !ok {
			return fmt.Errorf("%w: %d", errs.ErrUnknownLayerID, childLayerID)
		}

		for j := uint32(0); j < pairCount; j++ {
			parentID, err := d.r.ReadUint32()
			if err != nil {
				return err
			}

			childID, err := d.r.ReadUint32()
			if err != nil {
				return err
			}

			if int(parentID) >= len(parentObjs) {
				return fmt.Errorf("%w: parent %d in layer %d", errs.ErrOutOfRangeObjectID, parentID, parentLayerID)
			}
			if int(childID) >= len(childObjs) {
				return fmt.Errorf("%w: child %d in layer %d", errs.ErrOutOfRangeObjectID, childID, childLayerID)
			}

			parentObjs[parentID].AddChild(doc.ChildRef{LayerID: childLayerID, ObjectID: childID})
		}

		if err := d.r.Expect(section.RelationEnd); err != nil {
			return err
		}
	}

	return d.r.Expect(section.RelationsEnd)
}

func (d *Decoder) parseAttrs() error {
	if err := d.r.Expect(section.AttrsStart); err != nil {
		return err
	}

	chunkCount, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	for i := uint32(0); i < chunkCount; i++ {
		marker, err := d.r.PeekByte()
		if err != nil {
			return err
		}

		switch marker {
		case section.ChunkFullStart:
			if err := d.parseFullChunk(); err != nil {
				return err
			}
		case section.ChunkLinkedStart:
			if err := d.parseLinkedChunk(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: 0x%02x", errs.ErrUnexpectedChunkMarker, marker)
		}
	}

	return d.r.Expect(section.AttrsEnd)
}

// parseFullChunk reads one value per object in the chunk's layer, in object
// order, setting the attribute to an empty byte slice for any object the
// writer did not mark present — a full chunk never leaves an attribute
// merely absent, matching the encoder's write_raw_text-per-object loop.
func (d *Decoder) parseFullChunk() error {
	if err := d.r.Expect(section.ChunkFullStart); err != nil {
		return err
	}

	layerID, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	rawName, err := d.r.ReadUntilSeparator()
	if err != nil {
		return err
	}

	name, err := decodeString(rawName, d.encoding)
	if err != nil {
		return err
	}

	objs, ok := d.objectsByLayer[layerID]
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrUnknownLayerID, layerID)
	}

	for _, obj := range objs {
		val, err := d.r.ReadUntilSeparator()
		if err != nil {
			return err
		}
		obj.SetAttr(name, val)
	}

	return d.r.Expect(section.ChunkEnd)
}

func (d *Decoder) parseLinkedChunk() error {
	if err := d.r.Expect(section.ChunkLinkedStart); err != nil {
		return err
	}

	layerID, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	rawName, err := d.r.ReadUntilSeparator()
	if err != nil {
		return err
	}

	name, err := decodeString(rawName, d.encoding)
	if err != nil {
		return err
	}

	entryCount, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	objs, ok := d.objectsByLayer[layerID]
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrUnknownLayerID, layerID)
	}

	for i := uint32(0); i < entryCount; i++ {
		objID, err := d.r.ReadUint32()
		if err != nil {
			return err
		}

		val, err := d.r.ReadUntilSeparator()
		if err != nil {
			return err
		}

		if int(objID) >= len(objs) {
			return fmt.Errorf("%w: %d in layer %d", errs.ErrOutOfRangeObjectID, objID, layerID)
		}

		objs[objID].SetAttr(name, val)
	}

	return d.r.Expect(section.ChunkEnd)
}
