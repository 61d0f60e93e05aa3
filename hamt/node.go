package hamt

// node is the Leaf-or-Table alternative every Root/Table slot holds.
// Go has no built-in sum type at this scale; a two-method interface
// whose slot occupants are exactly *Leaf and *Table is the idiomatic
// stand-in — see spec's "Variant nodes" design note. *Root also has
// both methods, but is never stored in a slot.
type node interface {
	leafCount() int
	tableCount() int
}

func (l *Leaf) leafCount() int  { return 1 }
func (l *Leaf) tableCount() int { return 0 }
