package doc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayer_AddObject_SetsLayerID(t *testing.T) {
	l := NewLayer(3, "morphemes")
	o := NewLayerObject(0)

	l.AddObject(o)

	require.Equal(t, uint32(3), o.LayerID)
	require.Equal(t, []*LayerObject{o}, l.Objects)
}

func TestLayer_AddObjects_PreservesOrder(t *testing.T) {
	l := NewLayer(0, "words")
	o0 := NewLayerObject(0)
	o1 := NewLayerObject(1)
	o2 := NewLayerObject(2)

	l.AddObjects([]*LayerObject{o0, o1, o2})

	require.Equal(t, []*LayerObject{o0, o1, o2}, l.Objects)
	for _, o := range l.Objects {
		require.Equal(t, l.ID, o.LayerID)
	}
}
