// Package codec implements the encode and decode state machines that walk
// a doc.Document against the framing primitives, plus the chunk-selection
// heuristic that picks between the two attribute-chunk wire layouts.
package codec

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/arloliu/tbf/doc"
	"github.com/arloliu/tbf/errs"
	"github.com/arloliu/tbf/format"
	"github.com/arloliu/tbf/framing"
	"github.com/arloliu/tbf/section"
)

// relationPair is one (parent object id, child object id) entry within a
// single parent-layer/child-layer relation group.
type relationPair struct {
	parentID uint32
	childID  uint32
}

// attrChunkKey identifies one attribute chunk: all the values recorded for
// a single attribute name within a single layer.
type attrChunkKey struct {
	layerID uint32
	name    string
}

// Encoder serializes a single Document to the tbf wire format.
type Encoder struct {
	doc *doc.Document
}

// NewEncoder creates an Encoder for d.
func NewEncoder(d *doc.Document) *Encoder {
	return &Encoder{doc: d}
}

// Encode writes d's wire representation to sink. It is a package-level
// convenience around NewEncoder(d).Encode(sink).
func Encode(d *doc.Document, sink io.Writer) error {
	return NewEncoder(d).Encode(sink)
}

// Encode writes the document's header, layers, relations, and attribute
// chunks to sink in that order. All sections are built in a pooled
// in-memory buffer first and only flushed to sink with a single WriteTo
// once every section has succeeded, so a failed Encode call never writes
// any bytes to sink at all.
func (e *Encoder) Encode(sink io.Writer) error {
	w := framing.NewWriter()
	defer w.Release()

	if err := e.writeHeader(w); err != nil {
		return err
	}

	if err := e.writeLayers(w); err != nil {
		return err
	}

	if err := e.writeRelations(w); err != nil {
		return err
	}

	if err := e.writeAttrs(w); err != nil {
		return err
	}

	return w.WriteTo(sink)
}

func (e *Encoder) encodeText(s string) ([]byte, error) {
	return encodeString(s, e.doc.Header.Encoding)
}

// writeHeader writes the declared encoding name itself as raw bytes of the
// Go string (which is always valid UTF-8), since the encoding used to
// interpret the rest of the stream is not yet known while this field is
// being written.
func (e *Encoder) writeHeader(w *framing.Writer) error {
	w.WriteMarker(section.HeaderStart)

	if err := w.WriteRawText([]byte(e.doc.Header.Encoding)); err != nil {
		return err
	}
	w.WriteSeparator()

	w.WriteMarker(section.HeaderEnd)

	return nil
}

func (e *Encoder) writeLayers(w *framing.Writer) error {
	w.WriteMarker(section.LayersStart)

	count, err := toUint32(len(e.doc.Layers))
	if err != nil {
		return err
	}
	w.WriteUint32(count)

	for _, layer := range e.doc.Layers {
		w.WriteMarker(section.LayerStart)

		nameBytes, err := e.encodeText(layer.Name)
		if err != nil {
			return err
		}
		if err := w.WriteRawText(nameBytes); err != nil {
			return err
		}
		w.WriteSeparator()

		objCount, err := toUint32(len(layer.Objects))
		if err != nil {
			return err
		}
		w.WriteUint32(objCount)

		w.WriteMarker(section.LayerEnd)
	}

	w.WriteMarker(section.LayersEnd)

	return nil
}

// groupRelations buckets every child reference in the document by
// (parent layer id, child layer id), returning the total number of groups
// alongside the grouping itself.
func (e *Encoder) groupRelations() (map[uint32]map[uint32][]relationPair, int) {
	groups := make(map[uint32]map[uint32][]relationPair)

	for _, obj := range e.doc.AllObjects() {
		for _, ref := range obj.Children {
			byChild := groups[obj.LayerID]
			if byChild == nil {
				byChild = make(map[uint32][]relationPair)
				groups[obj.LayerID] = byChild
			}

			byChild[ref.LayerID] = append(byChild[ref.LayerID], relationPair{
				parentID: obj.ID,
				childID:  ref.ObjectID,
			})
		}
	}

	count := 0
	for _, byChild := range groups {
		count += len(byChild)
	}

	return groups, count
}

// writeRelations emits one RELATION entry per (parent layer, child layer)
// pair that actually occurs, sorted by (parent layer id, child layer id) so
// the output is deterministic regardless of object insertion order — the
// reference parser's emission order here is unspecified and occasionally
// nondeterministic; this resolves that ambiguity by sorting.
func (e *Encoder) writeRelations(w *framing.Writer) error {
	groups, count := e.groupRelations()

	for parentLayerID, byChild := range groups {
		for childLayerID := range byChild {
			if _, ok := e.doc.LayerByID(childLayerID); !ok {
				return fmt.Errorf("%w: layer %d (referenced from layer %d)", errs.ErrDanglingChild, childLayerID, parentLayerID)
			}
		}
	}

	w.WriteMarker(section.RelationsStart)

	groupCount, err := toUint32(count)
	if err != nil {
		return err
	}
	w.WriteUint32(groupCount)

	parentLayerIDs := sortedKeys(groups)
	for _, parentLayerID := range parentLayerIDs {
		childLayerIDs := sortedKeys(groups[parentLayerID])
		for _, childLayerID := range childLayerIDs {
			pairs := groups[parentLayerID][childLayerID]

			w.WriteMarker(section.RelationStart)
			w.WriteUint32(parentLayerID)
			w.WriteUint32(childLayerID)

			pairCount, err := toUint32(len(pairs))
			if err != nil {
				return err
			}
			w.WriteUint32(pairCount)

			for _, p := range pairs {
				w.WriteUint32(p.parentID)
				w.WriteUint32(p.childID)
			}

			w.WriteMarker(section.RelationEnd)
		}
	}

	w.WriteMarker(section.RelationsEnd)

	return nil
}

// groupAttrs buckets every attribute value in the document by
// (layer id, attribute name).
func (e *Encoder) groupAttrs() map[attrChunkKey]map[uint32][]byte {
	groups := make(map[attrChunkKey]map[uint32][]byte)

	for _, layer := range e.doc.Layers {
		for _, obj := range layer.Objects {
			for name, val := range obj.Attrs {
				key := attrChunkKey{layerID: layer.ID, name: name}

				byObj := groups[key]
				if byObj == nil {
					byObj = make(map[uint32][]byte)
					groups[key] = byObj
				}
				byObj[obj.ID] = val
			}
		}
	}

	return groups
}

// chooseLayout picks the cheaper of the two chunk layouts for an attribute
// present on k of a layer's n objects: a linked entry costs 4 id bytes plus
// a 1-byte minimum value, a full entry costs a 1-byte minimum value per
// object regardless of presence. Ties favor the full layout.
func chooseLayout(k, n int) format.ChunkLayout {
	linkedOverhead := k * (section.Uint32Size + 1)
	fullOverhead := n * 1

	if linkedOverhead < fullOverhead {
		return format.ChunkLinked
	}

	return format.ChunkFull
}

func (e *Encoder) writeAttrs(w *framing.Writer) error {
	groups := e.groupAttrs()

	w.WriteMarker(section.AttrsStart)

	chunkCount, err := toUint32(len(groups))
	if err != nil {
		return err
	}
	w.WriteUint32(chunkCount)

	keys := make([]attrChunkKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].layerID != keys[j].layerID {
			return keys[i].layerID < keys[j].layerID
		}
		return keys[i].name < keys[j].name
	})

	for _, key := range keys {
		layer, ok := e.doc.LayerByID(key.layerID)
		if !ok {
			continue // groups are built from e.doc.Layers, so this cannot happen
		}

		values := groups[key]

		nameBytes, err := e.encodeText(key.name)
		if err != nil {
			return err
		}

		switch chooseLayout(len(values), len(layer.Objects)) {
		case format.ChunkLinked:
			if err := e.writeLinkedChunk(w, key.layerID, nameBytes, values); err != nil {
				return err
			}
		default:
			if err := e.writeFullChunk(w, layer, nameBytes, values); err != nil {
				return err
			}
		}
	}

	w.WriteMarker(section.AttrsEnd)

	return nil
}

func (e *Encoder) writeFullChunk(w *framing.Writer, layer *doc.Layer, nameBytes []byte, values map[uint32][]byte) error {
	w.WriteMarker(section.ChunkFullStart)
	w.WriteUint32(layer.ID)

	if err := w.WriteRawText(nameBytes); err != nil {
		return err
	}
	w.WriteSeparator()

	for _, obj := range layer.Objects {
		if v, ok := values[obj.ID]; ok {
			if err := w.WriteRawText(v); err != nil {
				return err
			}
		}
		w.WriteSeparator()
	}

	w.WriteMarker(section.ChunkEnd)

	return nil
}

func (e *Encoder) writeLinkedChunk(w *framing.Writer, layerID uint32, nameBytes []byte, values map[uint32][]byte) error {
	w.WriteMarker(section.ChunkLinkedStart)
	w.WriteUint32(layerID)

	if err := w.WriteRawText(nameBytes); err != nil {
		return err
	}
	w.WriteSeparator()

	n, err := toUint32(len(values))
	if err != nil {
		return err
	}
	w.WriteUint32(n)

	ids := make([]uint32, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		w.WriteUint32(id)

		if err := w.WriteRawText(values[id]); err != nil {
			return err
		}
		w.WriteSeparator()
	}

	w.WriteMarker(section.ChunkEnd)

	return nil
}

func sortedKeys[K ~uint32, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
