package doc

// Layer is a named, ordered collection of objects at one annotation tier.
//
// Invariant: every object in Objects has LayerID equal to this layer's ID.
type Layer struct {
	ID      uint32
	Name    string
	Objects []*LayerObject
}

// NewLayer creates an empty layer with the given id and name.
func NewLayer(id uint32, name string) *Layer {
	return &Layer{ID: id, Name: name}
}

// AddObject appends obj to the layer, setting obj.LayerID to this layer's id.
func (l *Layer) AddObject(obj *LayerObject) {
	obj.LayerID = l.ID
	l.Objects = append(l.Objects, obj)
}

// AddObjects appends each object in order via AddObject.
func (l *Layer) AddObjects(objs []*LayerObject) {
	for _, o := range objs {
		l.AddObject(o)
	}
}
