package hamt

import (
	"math/bits"
	"slices"
)

// Table is an interior node: a 64-bit occupancy bitmap over 2^w logical
// slots plus a dense, packed slice holding only the occupied children
// (each either a *Leaf or a *Table). The position of a bit set at index
// ndx within the packed slice is popcount(bitmap & (flag-1)) — never a
// sparse array, per spec's "Packed slots + bitmap" design note.
type Table struct {
	depth  int
	bitmap uint64
	slots  []node
	root   *Root
}

// newTable constructs a Table seeded with exactly one Leaf — a Table is
// never constructed empty. depth must already have been checked against
// root.dMax by the caller.
func newTable(depth int, root *Root, firstLeaf *Leaf, shifted uint64) *Table {
	t := &Table{depth: depth, root: root}
	ndx := localIndex(shifted, root.w)
	t.bitmap = uint64(1) << ndx
	t.slots = []node{firstLeaf}
	return t
}

func localIndex(shifted uint64, w uint8) uint64 {
	mask := (uint64(1) << w) - 1
	return shifted & mask
}

func slotPosition(bitmap uint64, flag uint64) int {
	return bits.OnesCount64(bitmap & (flag - 1))
}

// insert inserts leaf into t, where shifted is the hash already shifted
// past every bit consumed by the Root and by every Table above t.
func (t *Table) insert(shifted uint64, leaf *Leaf) (bool, error) {
	ndx := localIndex(shifted, t.root.w)
	flag := uint64(1) << ndx
	pos := slotPosition(t.bitmap, flag)

	if t.bitmap&flag == 0 {
		// Bit clear: insert a fresh leaf at pos, shifting the tail right.
		t.slots = slices.Insert(t.slots, pos, node(leaf))
		t.bitmap |= flag
		return true, nil
	}

	switch existing := t.slots[pos].(type) {
	case *Leaf:
		if string(existing.Key()) == string(leaf.Key()) {
			existing.SetValue(leaf.Value())
			return false, nil
		}
		if t.depth == t.root.dMax {
			return false, MaxDepthExceededError{Depth: t.depth + 1, MaxDepth: t.root.dMax}
		}
		// Split: seed the new sub-table with the incumbent leaf, then
		// insert the incoming leaf under it, then replace the slot.
		// The incoming leaf's shift carries forward as shifted>>w; the
		// incumbent leaf has no carried shift state, so its original
		// hash is recomputed and shifted the same amount.
		sub := newTable(t.depth+1, t.root, existing, shiftOnceMore(t.root, existing.Key(), t.depth))
		if _, err := sub.insert(shifted>>t.root.w, leaf); err != nil {
			return false, err
		}
		t.slots[pos] = sub
		return true, nil
	case *Table:
		inserted, err := existing.insert(shifted>>t.root.w, leaf)
		return inserted, err
	default:
		panic("hamt: table slot holds neither *Leaf nor *Table")
	}
}

// shiftOnceMore recomputes the hash shift for key as seen by a Table at
// depth+1, i.e. t + depth*w bits consumed from the original hash. This
// is the same value the incoming leaf reaches by the >>w applied at each
// level on the way down; the incumbent leaf carries no shifted value, so
// its shift is computed directly from the original hash.
func shiftOnceMore(root *Root, key []byte, depth int) uint64 {
	h := root.hash(key)
	return h >> (uint(root.t) + uint(depth)*uint(root.w))
}

// find returns the value stored for key, or NotFoundError.
func (t *Table) find(shifted uint64, key []byte) ([]byte, error) {
	ndx := localIndex(shifted, t.root.w)
	flag := uint64(1) << ndx
	if t.bitmap&flag == 0 {
		return nil, NotFoundError{Key: key}
	}
	pos := slotPosition(t.bitmap, flag)
	switch existing := t.slots[pos].(type) {
	case *Leaf:
		if string(existing.Key()) == string(key) {
			return existing.Value(), nil
		}
		return nil, NotFoundError{Key: key}
	case *Table:
		if t.depth+1 > t.root.dMax {
			return nil, NotFoundError{Key: key}
		}
		return existing.find(shifted>>t.root.w, key)
	default:
		panic("hamt: table slot holds neither *Leaf nor *Table")
	}
}

// delete removes key from t, returning true if a Leaf was removed.
func (t *Table) delete(shifted uint64, key []byte) (bool, error) {
	if len(t.slots) == 0 {
		return false, NotFoundError{Key: key}
	}
	ndx := localIndex(shifted, t.root.w)
	flag := uint64(1) << ndx
	if t.bitmap&flag == 0 {
		return false, NotFoundError{Key: key}
	}
	pos := slotPosition(t.bitmap, flag)

	switch existing := t.slots[pos].(type) {
	case *Leaf:
		if string(existing.Key()) != string(key) {
			return false, NotFoundError{Key: key}
		}
		t.slots = slices.Delete(t.slots, pos, pos+1)
		t.bitmap &^= flag
		return true, nil
	case *Table:
		if t.depth+1 > t.root.dMax {
			return false, NotFoundError{Key: key}
		}
		return existing.delete(shifted>>t.root.w, key)
	default:
		panic("hamt: table slot holds neither *Leaf nor *Table")
	}
}

// LeafCount returns the number of Leaves reachable under t, recursing
// through every child Table.
func (t *Table) LeafCount() int {
	count := 0
	for _, n := range t.slots {
		count += n.leafCount()
	}
	return count
}

// TableCount returns the number of Tables reachable under t, including
// t itself.
func (t *Table) TableCount() int {
	count := 1
	for _, n := range t.slots {
		count += n.tableCount()
	}
	return count
}

func (t *Table) leafCount() int  { return t.LeafCount() }
func (t *Table) tableCount() int { return t.TableCount() }

// MaxSlots returns one more than the maximum slot index a Table at this
// w may occupy, i.e. 2^w.
func (t *Table) MaxSlots() int {
	return 1 << t.root.w
}

// Depth returns t's depth, where depth 1 is the first Table under Root.
func (t *Table) Depth() int { return t.depth }
