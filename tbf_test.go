package tbf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tbf"
)

func TestEncodeToBytes_DecodeFromBytes_RoundTrip(t *testing.T) {
	d, err := tbf.NewDocument()
	require.NoError(t, err)

	words := &tbf.Layer{ID: 0, Name: "words"}
	w0 := &tbf.LayerObject{ID: 0}
	w0.SetAttrText("form", "kassa")
	words.AddObject(w0)
	d.AddLayer(words)

	b, err := tbf.EncodeToBytes(d)
	require.NoError(t, err)

	got, err := tbf.DecodeFromBytes(b)
	require.NoError(t, err)
	require.Len(t, got.Layers, 1)

	v, ok := got.Layers[0].Objects[0].Attr("form")
	require.True(t, ok)
	require.Equal(t, []byte("kassa"), v)
}

func TestEncodeToText_DecodeFromText_RoundTrip(t *testing.T) {
	d, err := tbf.NewDocument()
	require.NoError(t, err)

	words := &tbf.Layer{ID: 0, Name: "words"}
	w0 := &tbf.LayerObject{ID: 0}
	w0.SetAttr("form", []byte{0x01, 0xFF, 0x41})
	words.AddObject(w0)
	d.AddLayer(words)

	text, err := tbf.EncodeToText(d)
	require.NoError(t, err)

	got, err := tbf.DecodeFromText(text)
	require.NoError(t, err)

	v, ok := got.Layers[0].Objects[0].Attr("form")
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0xFF, 0x41}, v)
}

func TestEncode_PropagatesEncoderError(t *testing.T) {
	d, err := tbf.NewDocument()
	require.NoError(t, err)

	words := &tbf.Layer{ID: 0, Name: "words"}
	w0 := &tbf.LayerObject{ID: 0}
	w0.AddChild(tbf.ChildRef{LayerID: 99, ObjectID: 0})
	words.AddObject(w0)
	d.AddLayer(words)

	_, err = tbf.EncodeToBytes(d)
	require.Error(t, err)
}
