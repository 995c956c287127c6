package doc

// ChildRef is a non-owning reference from a parent object to a child object
// living in some layer of the same document. It is an index pair rather
// than a pointer, so the object graph never needs pointer-cycle collection
// and maps directly onto a wire relation-group entry.
type ChildRef struct {
	LayerID  uint32
	ObjectID uint32
}

// LayerObject is a single unit within a layer, identified by an id unique
// within its layer.
//
// Invariant: a ChildRef in Children always names an object belonging to
// some layer of the same Document; the encoder rejects a dangling one (see
// errs.ErrDanglingChild) and the decoder can never produce one (relations
// are resolved against already-materialized layers).
type LayerObject struct {
	ID       uint32
	LayerID  uint32
	Children []ChildRef
	Attrs    map[string][]byte
}

// NewLayerObject creates an object with the given id, not yet attached to
// any layer (LayerID is set by Layer.AddObject).
func NewLayerObject(id uint32) *LayerObject {
	return &LayerObject{
		ID:    id,
		Attrs: make(map[string][]byte),
	}
}

// AddChild appends a reference to a child object.
func (o *LayerObject) AddChild(ref ChildRef) {
	o.Children = append(o.Children, ref)
}

// SetAttr sets a raw byte-valued attribute, passed through to the wire
// unchanged.
func (o *LayerObject) SetAttr(key string, value []byte) {
	if o.Attrs == nil {
		o.Attrs = make(map[string][]byte)
	}
	o.Attrs[key] = value
}

// SetAttrText is a convenience for SetAttr(key, []byte(text)). Attribute
// values are a fixed byte boundary type (see errs and the codec package);
// this only saves the caller a conversion, it does not apply the header's
// declared encoding, since value bytes are never re-decoded against it.
func (o *LayerObject) SetAttrText(key, text string) {
	o.SetAttr(key, []byte(text))
}

// Attr returns the raw attribute value and whether it was present.
func (o *LayerObject) Attr(key string) ([]byte, bool) {
	v, ok := o.Attrs[key]
	return v, ok
}
