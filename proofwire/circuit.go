package proofwire

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/sumtree"
)

// MaxCircuitSumBits bounds every sum the solvency circuit accepts. Sums are
// range checked in the circuit so that adding two of them can not wrap the
// field.
const MaxCircuitSumBits = 252

// CircuitInput is the witness input for the proof of solvency circuit. The
// root sum is private and replaced by the public target sum it must not
// exceed.
type CircuitInput struct {
	RootHash       string   `json:"rootHash"`
	LeafHash       string   `json:"leafHash"`
	LeafSum        string   `json:"leafSum"`
	SiblingsHashes []string `json:"siblingsHashes"`
	SiblingsSums   []string `json:"siblingsSums"`
	PathIndices    []int    `json:"pathIndices"`
	TargetSum      string   `json:"targetSum"`
}

// NewCircuitInput prepares proof for the circuit with targetSum, typically
// the total of the assets held. Sums outside the circuit range are rejected
// with ErrSumOverflow, as the circuit would fail on them.
func NewCircuitInput(proof *sumtree.MerkleProof, targetSum *big.Int) (CircuitInput, error) {
	if err := checkShape(proof); err != nil {
		return CircuitInput{}, err
	}
	if targetSum == nil || targetSum.Sign() < 0 {
		return CircuitInput{}, fmt.Errorf("%w: target sum must be non negative", ErrMalformedProof)
	}

	sums := append([]*big.Int{proof.LeafSum, targetSum}, proof.SiblingsSums...)
	for _, s := range sums {
		if s.BitLen() > MaxCircuitSumBits {
			return CircuitInput{}, fmt.Errorf("%w: %d bits", ErrSumOverflow, s.BitLen())
		}
	}

	return CircuitInput{
		RootHash:       proof.RootHash.String(),
		LeafHash:       proof.LeafHash.String(),
		LeafSum:        proof.LeafSum.String(),
		SiblingsHashes: decimals(proof.SiblingsHashes),
		SiblingsSums:   decimals(proof.SiblingsSums),
		PathIndices:    append([]int(nil), proof.PathIndices...),
		TargetSum:      targetSum.String(),
	}, nil
}

// EncodeCircuitInput returns the indented JSON input file for the prover.
func EncodeCircuitInput(in CircuitInput) ([]byte, error) {
	return json.MarshalIndent(in, "", "  ")
}
