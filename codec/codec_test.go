package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamt-go/hamt/hamt"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := require.New(t)

	root, err := hamt.New(4, 4)
	r.NoError(err)

	want := map[string]string{
		"alpha": "1",
		"beta":  "2",
		"gamma": "3",
	}
	for k, v := range want {
		leaf, err := hamt.NewLeaf([]byte(k), []byte(v))
		r.NoError(err)
		r.NoError(root.Insert(leaf))
	}

	data, err := Encode(root)
	r.NoError(err)
	r.NotEmpty(data)

	restored, err := Decode(data)
	r.NoError(err)
	r.Equal(root.W(), restored.W())
	r.Equal(root.T(), restored.T())
	r.Equal(root.LeafCount(), restored.LeafCount())

	for k, v := range want {
		got, err := restored.Find([]byte(k))
		r.NoError(err)
		r.Equal([]byte(v), got)
	}
}

func TestEncodeEmptyRoot(t *testing.T) {
	r := require.New(t)

	root, err := hamt.New(2, 2)
	r.NoError(err)

	data, err := Encode(root)
	r.NoError(err)

	restored, err := Decode(data)
	r.NoError(err)
	r.Equal(0, restored.LeafCount())
}

func TestDecodeRejectsMalformedData(t *testing.T) {
	r := require.New(t)

	_, err := Decode([]byte("not cbor"))
	r.Error(err)
}
