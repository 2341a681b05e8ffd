package proofwire

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/sumtree"
	"github.com/fxamacker/cbor/v2"
)

// cborProof is the CBOR form of a proof. Big integers are unsigned big
// endian byte strings without leading zeros.
type cborProof struct {
	RootHash       []byte   `cbor:"1,keyasint"`
	RootSum        []byte   `cbor:"2,keyasint"`
	LeafHash       []byte   `cbor:"3,keyasint"`
	LeafSum        []byte   `cbor:"4,keyasint"`
	SiblingsHashes [][]byte `cbor:"5,keyasint"`
	SiblingsSums   [][]byte `cbor:"6,keyasint"`
	PathIndices    []int    `cbor:"7,keyasint"`
}

var (
	encMode, encModeErr = cbor.CoreDetEncOptions().EncMode()
	decMode, decModeErr = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
)

// EncodeCBOR returns the deterministic CBOR encoding of p.
func EncodeCBOR(p *sumtree.MerkleProof) ([]byte, error) {
	if encModeErr != nil {
		return nil, encModeErr
	}
	if err := checkShape(p); err != nil {
		return nil, err
	}
	return encMode.Marshal(cborProof{
		RootHash:       p.RootHash.Bytes(),
		RootSum:        p.RootSum.Bytes(),
		LeafHash:       p.LeafHash.Bytes(),
		LeafSum:        p.LeafSum.Bytes(),
		SiblingsHashes: byteStrings(p.SiblingsHashes),
		SiblingsSums:   byteStrings(p.SiblingsSums),
		PathIndices:    p.PathIndices,
	})
}

// DecodeCBOR parses a CBOR encoded proof.
func DecodeCBOR(data []byte) (*sumtree.MerkleProof, error) {
	if decModeErr != nil {
		return nil, decModeErr
	}
	var c cborProof
	if err := decMode.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProof, err)
	}
	p := &sumtree.MerkleProof{
		RootHash:       new(big.Int).SetBytes(c.RootHash),
		RootSum:        new(big.Int).SetBytes(c.RootSum),
		LeafHash:       new(big.Int).SetBytes(c.LeafHash),
		LeafSum:        new(big.Int).SetBytes(c.LeafSum),
		SiblingsHashes: bigInts(c.SiblingsHashes),
		SiblingsSums:   bigInts(c.SiblingsSums),
		PathIndices:    c.PathIndices,
	}
	if err := checkShape(p); err != nil {
		return nil, err
	}
	return p, nil
}

func byteStrings(xs []*big.Int) [][]byte {
	out := make([][]byte, len(xs))
	for i, x := range xs {
		out[i] = x.Bytes()
	}
	return out
}

func bigInts(bs [][]byte) []*big.Int {
	out := make([]*big.Int, len(bs))
	for i, b := range bs {
		out[i] = new(big.Int).SetBytes(b)
	}
	return out
}
