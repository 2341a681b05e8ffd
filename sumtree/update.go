package sumtree

import (
	"math/big"
)

// Update replaces the entry at index with (newEntryValue, newEntrySum) and
// recomputes the path to the root.
func (t *Tree) Update(index int, newEntryValue, newEntrySum *big.Int) error {
	if err := t.checkLeafIndex(index); err != nil {
		return err
	}
	leaf, err := NewLeafNode(newEntryValue, newEntrySum, t.hash)
	if err != nil {
		return err
	}
	return t.updateLeaf(index, leaf)
}

// Delete zeroes the leaf at index.
//
// The position is not removed: Size is unchanged and later inserts still
// append after it. The leaf becomes the level 0 zero node, so its sum no
// longer counts towards the root and IndexOf no longer finds the old entry.
func (t *Tree) Delete(index int) error {
	if err := t.checkLeafIndex(index); err != nil {
		return err
	}
	return t.updateLeaf(index, t.zeroes[0])
}

func (t *Tree) updateLeaf(index int, leaf Node) error {
	path, root, err := t.computePath(index, leaf)
	if err != nil {
		return err
	}
	return t.commitPath(index, path, root)
}
