package sumtree

import (
	"fmt"
	"math/big"
)

// Insert adds the entry (entryValue, entrySum) at the next free leaf position
// and recomputes the path from that leaf to the root.
//
// Positions are assigned in insertion order, the new leaf index is Size()-1
// after a successful insert. Unwritten siblings on the path read as the zero
// node of their level.
func (t *Tree) Insert(entryValue, entrySum *big.Int) error {
	if uint64(len(t.nodes[0])) >= t.Capacity() {
		return fmt.Errorf("%w: capacity %d", ErrTreeFull, t.Capacity())
	}

	leaf, err := NewLeafNode(entryValue, entrySum, t.hash)
	if err != nil {
		return err
	}

	index := len(t.nodes[0])
	path, root, err := t.computePath(index, leaf)
	if err != nil {
		return err
	}
	return t.commitPath(index, path, root)
}
