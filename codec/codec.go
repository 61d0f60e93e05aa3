// Package codec provides canonical CBOR serialization for a *hamt.Root,
// kept deliberately separate from package hamt: the trie itself has no
// notion of an on-wire format, only of its in-memory slot structure.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/hamt-go/hamt/hamt"
)

// entry is a single (key, value) pair as it appears on the wire. Order
// within Snapshot.Entries is whatever hamt.Root.All produced it in —
// the trie itself makes no insertion-order guarantee, and Snapshot does
// not add one.
type entry struct {
	Key   []byte `cbor:"k"`
	Value []byte `cbor:"v"`
}

// Snapshot is the on-wire representation of a *hamt.Root: the
// parameters needed to reconstruct an empty trie of the same shape,
// plus every (key, value) pair it holds.
type Snapshot struct {
	W       uint8   `cbor:"w"`
	T       uint8   `cbor:"t"`
	Entries []entry `cbor:"entries"`
}

// DefaultDecoder returns a CBOR decoder that decodes CBOR byte strings
// into encoding.BinaryUnmarshaler targets via UnmarshalBinary. It does
// not check that its input is canonically encoded.
func DefaultDecoder(rd io.Reader) (*cbor.Decoder, error) {
	opts := cbor.DecOptions{
		BinaryUnmarshaler: cbor.BinaryUnmarshalerByteString,
	}
	mode, err := opts.DecMode()
	if err != nil {
		return nil, err
	}
	return mode.NewDecoder(rd), nil
}

// DefaultEncoder returns a CBOR encoder using canonical (deterministic)
// encoding rules.
func DefaultEncoder(w io.Writer) (*cbor.Encoder, error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return mode.NewEncoder(w), nil
}

// Encode serializes root's full contents into canonical CBOR.
func Encode(root *hamt.Root) ([]byte, error) {
	snap := Snapshot{
		W:       root.W(),
		T:       root.T(),
		Entries: make([]entry, 0, root.LeafCount()),
	}
	root.All(func(key, value []byte) bool {
		snap.Entries = append(snap.Entries, entry{Key: key, Value: value})
		return true
	})

	var buf bytes.Buffer
	enc, err := DefaultEncoder(&buf)
	if err != nil {
		return nil, fmt.Errorf("codec: build encoder: %w", err)
	}
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("codec: encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reconstructs a *hamt.Root from data previously produced by
// Encode. Any hamt.Option values are forwarded to hamt.New, so callers
// can supply a non-default hash function (e.g. to match one used when
// the snapshot was taken).
func Decode(data []byte, opts ...hamt.Option) (*hamt.Root, error) {
	dec, err := DefaultDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: build decoder: %w", err)
	}
	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("codec: decode snapshot: %w", err)
	}

	root, err := hamt.New(snap.W, snap.T, opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: rebuild root: %w", err)
	}
	for _, e := range snap.Entries {
		leaf, err := hamt.NewLeaf(e.Key, e.Value)
		if err != nil {
			return nil, fmt.Errorf("codec: rebuild leaf: %w", err)
		}
		if err := root.Insert(leaf); err != nil {
			return nil, fmt.Errorf("codec: reinsert %q: %w", e.Key, err)
		}
	}
	return root, nil
}
