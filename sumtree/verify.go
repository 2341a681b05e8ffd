package sumtree

import (
	"math/big"
)

// VerifyProof reports whether proof is consistent against the tree's hash
// function. The proof's own root is checked, not the tree's current root, so
// proofs taken before later mutations still verify.
func (t *Tree) VerifyProof(proof *MerkleProof) bool {
	return VerifyProof(proof, t.hash)
}

// VerifyProof recomputes the root from the leaf and siblings of proof and
// reports whether both the root hash and root sum match.
//
// Malformed proofs verify false, no error is returned. Malformed covers nil
// fields, sibling and direction slices of differing lengths, a path longer
// than MaxDepth or empty, directions other than 0 and 1, negative sums and
// hash failures.
func VerifyProof(proof *MerkleProof, hash HashFunction) bool {
	if proof == nil || hash == nil {
		return false
	}
	if !wellFormed(proof) {
		return false
	}

	node := Node{Hash: proof.LeafHash, Sum: proof.LeafSum}
	for i, direction := range proof.PathIndices {
		sibling := Node{Hash: proof.SiblingsHashes[i], Sum: proof.SiblingsSums[i]}

		var err error
		if direction == 0 {
			node, err = NewMiddleNode(node, sibling, hash)
		} else {
			node, err = NewMiddleNode(sibling, node, hash)
		}
		if err != nil {
			return false
		}
	}

	return node.Hash.Cmp(proof.RootHash) == 0 && node.Sum.Cmp(proof.RootSum) == 0
}

func wellFormed(proof *MerkleProof) bool {
	n := len(proof.PathIndices)
	if n == 0 || n > MaxDepth {
		return false
	}
	if len(proof.SiblingsHashes) != n || len(proof.SiblingsSums) != n {
		return false
	}
	if proof.RootHash == nil || proof.LeafHash == nil {
		return false
	}
	if !nonNegative(proof.RootSum) || !nonNegative(proof.LeafSum) {
		return false
	}
	for i := 0; i < n; i++ {
		if proof.PathIndices[i] != 0 && proof.PathIndices[i] != 1 {
			return false
		}
		if proof.SiblingsHashes[i] == nil || !nonNegative(proof.SiblingsSums[i]) {
			return false
		}
	}
	return true
}

func nonNegative(x *big.Int) bool {
	return x != nil && x.Sign() >= 0
}
