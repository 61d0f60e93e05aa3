package hamt

// Root is the entry point for every operation on a trie: a fixed-size,
// directly-indexed slot table consuming the low-order t bits of a key's
// hash. Unlike a Table, Root carries no bitmap — a slot is either
// present or absent for hash-index i regardless of which other indices
// are occupied. Because 2^t can be far larger than any dense array
// could hold (t is allowed up to 64), the slot table is backed by a map
// keyed by index rather than a literal array; this preserves direct,
// O(1) indexed access without requiring an up-front allocation of 2^t
// entries.
type Root struct {
	w, t      uint8
	dMax      int
	mask      uint64
	slotCount uint64 // 2^t; 0 is the t==64 sentinel (unrepresentable in uint64)
	slots     map[uint64]node
	h         Hash
}

// Option configures a Root at construction time.
type Option func(*Root)

// WithHash overrides the default hash function used to locate keys.
func WithHash(h Hash) Option {
	return func(r *Root) { r.h = h }
}

// New constructs an empty Root. w is the number of bits each interior
// Table consumes (2 ≤ w ≤ 6); t is the number of bits the Root itself
// consumes (2 ≤ t ≤ 64). Returns InvalidArgumentError if either is out
// of range.
func New(w, t uint8, opts ...Option) (*Root, error) {
	if w < 2 || w > 6 {
		return nil, InvalidArgumentError{Field: "w", Reason: "must satisfy 2 <= w <= 6"}
	}
	if t < 2 || t > 64 {
		return nil, InvalidArgumentError{Field: "t", Reason: "must satisfy 2 <= t <= 64"}
	}
	r := &Root{
		w:     w,
		t:     t,
		dMax:  (64 - int(t)) / int(w),
		h:     DefaultHash,
		slots: make(map[uint64]node),
	}
	for _, opt := range opts {
		opt(r)
	}
	if t == 64 {
		r.mask = ^uint64(0)
		r.slotCount = 0
	} else {
		r.slotCount = uint64(1) << t
		r.mask = r.slotCount - 1
	}
	return r, nil
}

// W returns the configured bits-per-Table-level.
func (r *Root) W() uint8 { return r.w }

// T returns the configured bits-consumed-at-Root.
func (r *Root) T() uint8 { return r.t }

// DMax returns the maximum interior Table depth.
func (r *Root) DMax() int { return r.dMax }

// Mask returns the Root's index mask, (1<<t)-1.
func (r *Root) Mask() uint64 { return r.mask }

// SlotCount returns 2^t, the number of logical slots in the Root. For
// t==64 this value does not fit in a uint64 and SlotCount returns 0.
func (r *Root) SlotCount() uint64 { return r.slotCount }

func (r *Root) hash(key []byte) uint64 { return r.h(key) }

func (r *Root) index(h uint64) uint64 {
	return h & r.mask
}

// Insert stores leaf, overwriting any existing value for the same key.
// Fails with MaxDepthExceededError if a split would exceed DMax,
// leaving the trie in its pre-insert state.
func (r *Root) Insert(leaf *Leaf) error {
	h := r.hash(leaf.Key())
	i := r.index(h)
	switch existing := r.slots[i].(type) {
	case nil:
		r.slots[i] = leaf
	case *Leaf:
		if string(existing.Key()) == string(leaf.Key()) {
			existing.SetValue(leaf.Value())
			return nil
		}
		if r.dMax < 1 {
			return MaxDepthExceededError{Depth: 1, MaxDepth: r.dMax}
		}
		sub := newTable(1, r, existing, r.hash(existing.Key())>>r.t)
		if _, err := sub.insert(h>>r.t, leaf); err != nil {
			return err
		}
		r.slots[i] = sub
	case *Table:
		if _, err := existing.insert(h>>r.t, leaf); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the value stored for key, or NotFoundError.
func (r *Root) Find(key []byte) ([]byte, error) {
	h := r.hash(key)
	i := r.index(h)
	switch existing := r.slots[i].(type) {
	case nil:
		return nil, NotFoundError{Key: key}
	case *Leaf:
		if string(existing.Key()) == string(key) {
			return existing.Value(), nil
		}
		return nil, NotFoundError{Key: key}
	case *Table:
		return existing.find(h>>r.t, key)
	default:
		panic("hamt: root slot holds neither *Leaf nor *Table")
	}
}

// Delete removes key from the trie, failing with NotFoundError if it is
// absent.
func (r *Root) Delete(key []byte) error {
	h := r.hash(key)
	i := r.index(h)
	switch existing := r.slots[i].(type) {
	case nil:
		return NotFoundError{Key: key}
	case *Leaf:
		if string(existing.Key()) != string(key) {
			return NotFoundError{Key: key}
		}
		delete(r.slots, i)
		return nil
	case *Table:
		_, err := existing.delete(h>>r.t, key)
		return err
	default:
		panic("hamt: root slot holds neither *Leaf nor *Table")
	}
}

// LeafCount returns the total number of distinct keys stored.
func (r *Root) LeafCount() int {
	count := 0
	for _, n := range r.slots {
		count += n.leafCount()
	}
	return count
}

// TableCount returns the number of Tables reachable from the Root,
// including the Root itself.
func (r *Root) TableCount() int {
	count := 1
	for _, n := range r.slots {
		count += n.tableCount()
	}
	return count
}

func (r *Root) leafCount() int  { return r.LeafCount() }
func (r *Root) tableCount() int { return r.TableCount() }

// All calls fn for every (key, value) pair reachable from the Root, in
// no particular order (spec's Non-goals disclaim ordering, not
// iteration itself). Iteration stops early if fn returns false.
func (r *Root) All(fn func(key, value []byte) bool) bool {
	for _, n := range r.slots {
		if !walk(n, fn) {
			return false
		}
	}
	return true
}

func walk(n node, fn func(key, value []byte) bool) bool {
	switch v := n.(type) {
	case *Leaf:
		return fn(v.Key(), v.Value())
	case *Table:
		for _, child := range v.slots {
			if !walk(child, fn) {
				return false
			}
		}
		return true
	default:
		panic("hamt: slot holds neither *Leaf nor *Table")
	}
}
