package sumtree

import (
	"math/big"

	"github.com/forestrie/go-merklesum/bloom"
)

// IndexOf returns the position of the first leaf whose hash matches the leaf
// for (entryValue, entrySum), or -1 if there is none.
//
// Only hashes are compared. As the leaf hash commits to the sum, a query with
// the right value but a different sum does not match. An entry that cannot
// form a leaf (nil or negative sum) is never present.
func (t *Tree) IndexOf(entryValue, entrySum *big.Int) int {
	leaf, err := NewLeafNode(entryValue, entrySum, t.hash)
	if err != nil {
		return -1
	}

	if t.leafFilter != nil {
		maybe, err := bloom.MaybeContainsV1(t.leafFilter, leafFilterKey(leaf.Hash))
		if err == nil && !maybe {
			return -1
		}
	}

	for i, n := range t.nodes[0] {
		if n.Hash.Cmp(leaf.Hash) == 0 {
			return i
		}
	}
	return -1
}
