package hamt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalIndexAndSlotPosition(t *testing.T) {
	r := require.New(t)

	r.Equal(uint64(0xF), localIndex(0xFF, 4))
	r.Equal(uint64(0x3), localIndex(0b10_0011, 2))

	// three bits set below position 3 (bits 0,1,2) -> popcount 3
	bitmap := uint64(0b0000_1111)
	r.Equal(3, slotPosition(bitmap, 1<<3))
	r.Equal(0, slotPosition(bitmap, 1<<0))
}

func TestTableMaxSlotsAndDepth(t *testing.T) {
	r := require.New(t)

	root, err := New(4, 4, WithHash(mapHash(map[string]uint64{
		"a": 0x00,
		"b": 0x10,
	})))
	r.NoError(err)

	leaf1, err := NewLeaf([]byte("a"), []byte("1"))
	r.NoError(err)
	leaf2, err := NewLeaf([]byte("b"), []byte("2"))
	r.NoError(err)

	r.NoError(root.Insert(leaf1))
	r.NoError(root.Insert(leaf2))

	tbl, ok := root.slots[0].(*Table)
	r.True(ok)
	r.Equal(1, tbl.Depth())
	r.Equal(16, tbl.MaxSlots())
}

func mapHash(m map[string]uint64) Hash {
	return func(key []byte) uint64 {
		if v, ok := m[string(key)]; ok {
			return v
		}
		return DefaultHash(key)
	}
}
