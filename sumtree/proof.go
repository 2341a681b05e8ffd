package sumtree

import "math/big"

// MerkleProof proves that a leaf (hash and sum) is included in a tree with a
// given root hash and root sum.
//
// All slices have one element per level, ordered from the leaf level upwards:
// index 0 is the leaf's own sibling, index depth-1 is the child of the root.
// PathIndices[i] is 0 when the proven node at level i is the left child and 1
// when it is the right child.
//
// A proof is a plain value and holds no reference to the tree it came from.
type MerkleProof struct {
	RootHash       *big.Int
	RootSum        *big.Int
	LeafHash       *big.Int
	LeafSum        *big.Int
	SiblingsHashes []*big.Int
	SiblingsSums   []*big.Int
	PathIndices    []int
}

// LeafIndex recovers the leaf position from the path directions.
func (p *MerkleProof) LeafIndex() uint64 {
	var index uint64
	for i, d := range p.PathIndices {
		if d == 1 {
			index |= 1 << uint(i)
		}
	}
	return index
}

// CreateProof returns the inclusion proof for the leaf at index against the
// current root.
func (t *Tree) CreateProof(index int) (*MerkleProof, error) {
	if err := t.checkLeafIndex(index); err != nil {
		return nil, err
	}

	proof := &MerkleProof{
		RootHash:       cloneInt(t.root.Hash),
		RootSum:        cloneInt(t.root.Sum),
		LeafHash:       cloneInt(t.nodes[0][index].Hash),
		LeafSum:        cloneInt(t.nodes[0][index].Sum),
		SiblingsHashes: make([]*big.Int, t.depth),
		SiblingsSums:   make([]*big.Int, t.depth),
		PathIndices:    make([]int, t.depth),
	}

	for level := 0; level < t.depth; level++ {
		position := index % Arity

		siblingIndex := index + 1
		if position == 1 {
			siblingIndex = index - 1
		}
		sibling := t.nodeAt(level, siblingIndex)

		proof.PathIndices[level] = position
		proof.SiblingsHashes[level] = cloneInt(sibling.Hash)
		proof.SiblingsSums[level] = cloneInt(sibling.Sum)

		index /= Arity
	}

	return proof, nil
}
