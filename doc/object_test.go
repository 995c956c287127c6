package doc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayerObject_SetAttr(t *testing.T) {
	o := NewLayerObject(0)
	o.SetAttr("gloss", []byte("run.PST"))

	v, ok := o.Attr("gloss")
	require.True(t, ok)
	require.Equal(t, []byte("run.PST"), v)
}

func TestLayerObject_SetAttrText(t *testing.T) {
	o := NewLayerObject(0)
	o.SetAttrText("form", "kassa")

	v, ok := o.Attr("form")
	require.True(t, ok)
	require.Equal(t, []byte("kassa"), v)
}

func TestLayerObject_Attr_Missing(t *testing.T) {
	o := NewLayerObject(0)
	_, ok := o.Attr("missing")
	require.False(t, ok)
}

func TestLayerObject_AddChild(t *testing.T) {
	o := NewLayerObject(0)
	ref := ChildRef{LayerID: 1, ObjectID: 2}
	o.AddChild(ref)

	require.Equal(t, []ChildRef{ref}, o.Children)
}

func TestLayerObject_ZeroValueAttrsMapUsable(t *testing.T) {
	o := &LayerObject{ID: 0}
	o.SetAttr("k", []byte("v"))

	v, ok := o.Attr("k")
	require.True(t, ok)
	require.Equal(t, []byte("v"), v)
}
