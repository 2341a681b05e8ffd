package solvency

import (
	"math/big"
	"time"

	"github.com/forestrie/go-merklesum/sumtree"
	"github.com/google/uuid"
)

// LiabilitiesState is the signed commitment to a liabilities tree.
type LiabilitiesState struct {
	// TreeID identifies the published tree, it is the 16 byte form of a uuid.
	TreeID []byte `cbor:"1,keyasint"`
	Depth  uint8  `cbor:"2,keyasint"`
	// LeafCount is the number of leaf positions written, deleted leaves
	// included.
	LeafCount uint64 `cbor:"3,keyasint"`
	// RootHash and RootSum are unsigned big endian integers. They are removed
	// from the published payload.
	RootHash []byte `cbor:"4,keyasint,omitempty"`
	RootSum  []byte `cbor:"5,keyasint,omitempty"`
	// Timestamp is the unix time in milliseconds at which the state was taken.
	Timestamp int64 `cbor:"6,keyasint"`
	// HashName is the fieldhash name of the tree hash.
	HashName string `cbor:"7,keyasint"`
}

// StateFromTree captures the current root of tree.
func StateFromTree(treeID uuid.UUID, hashName string, tree *sumtree.Tree, now time.Time) LiabilitiesState {
	root := tree.Root()
	return LiabilitiesState{
		TreeID:    treeID[:],
		Depth:     uint8(tree.Depth()),
		LeafCount: uint64(tree.Size()),
		RootHash:  root.Hash.Bytes(),
		RootSum:   root.Sum.Bytes(),
		Timestamp: now.UnixMilli(),
		HashName:  hashName,
	}
}

// WithProofRoot returns a copy of s carrying the root of proof.
func (s LiabilitiesState) WithProofRoot(proof *sumtree.MerkleProof) LiabilitiesState {
	s.RootHash = proof.RootHash.Bytes()
	s.RootSum = proof.RootSum.Bytes()
	return s
}

// Liabilities returns the root sum, nil once it has been detached.
func (s LiabilitiesState) Liabilities() *big.Int {
	if s.RootSum == nil {
		return nil
	}
	return new(big.Int).SetBytes(s.RootSum)
}

// ID parses TreeID.
func (s LiabilitiesState) ID() (uuid.UUID, error) {
	id, err := uuid.FromBytes(s.TreeID)
	if err != nil {
		return uuid.UUID{}, ErrTreeIDInvalid
	}
	return id, nil
}
