package solvency

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/sumtree"
)

// CheckSolvency verifies proof and that its root sum, the total liabilities,
// is no greater than assetsSum.
func CheckSolvency(proof *sumtree.MerkleProof, assetsSum *big.Int, hash sumtree.HashFunction) error {
	if assetsSum == nil || assetsSum.Sign() < 0 {
		return ErrInvalidAssets
	}
	if !sumtree.VerifyProof(proof, hash) {
		return ErrProofInvalid
	}
	if proof.RootSum.Cmp(assetsSum) > 0 {
		return fmt.Errorf("%w: liabilities %s, assets %s", ErrInsolvent, proof.RootSum, assetsSum)
	}
	return nil
}
