package proofwire

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/sumtree"
)

// Proof is the JSON form of a sumtree.MerkleProof.
type Proof struct {
	RootHash       string   `json:"rootHash"`
	RootSum        string   `json:"rootSum"`
	LeafHash       string   `json:"leafHash"`
	LeafSum        string   `json:"leafSum"`
	SiblingsHashes []string `json:"siblingsHashes"`
	SiblingsSums   []string `json:"siblingsSums"`
	PathIndices    []int    `json:"pathIndices"`
}

// FromProof converts p to its JSON form.
func FromProof(p *sumtree.MerkleProof) (Proof, error) {
	if err := checkShape(p); err != nil {
		return Proof{}, err
	}
	return Proof{
		RootHash:       p.RootHash.String(),
		RootSum:        p.RootSum.String(),
		LeafHash:       p.LeafHash.String(),
		LeafSum:        p.LeafSum.String(),
		SiblingsHashes: decimals(p.SiblingsHashes),
		SiblingsSums:   decimals(p.SiblingsSums),
		PathIndices:    append([]int(nil), p.PathIndices...),
	}, nil
}

// ToProof parses the decimal fields back into a sumtree.MerkleProof.
func (w Proof) ToProof() (*sumtree.MerkleProof, error) {
	var err error
	p := &sumtree.MerkleProof{PathIndices: append([]int(nil), w.PathIndices...)}

	if p.RootHash, err = parseDecimal("rootHash", w.RootHash); err != nil {
		return nil, err
	}
	if p.RootSum, err = parseDecimal("rootSum", w.RootSum); err != nil {
		return nil, err
	}
	if p.LeafHash, err = parseDecimal("leafHash", w.LeafHash); err != nil {
		return nil, err
	}
	if p.LeafSum, err = parseDecimal("leafSum", w.LeafSum); err != nil {
		return nil, err
	}
	if p.SiblingsHashes, err = parseDecimals("siblingsHashes", w.SiblingsHashes); err != nil {
		return nil, err
	}
	if p.SiblingsSums, err = parseDecimals("siblingsSums", w.SiblingsSums); err != nil {
		return nil, err
	}

	if err := checkShape(p); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeJSON returns the JSON encoding of p.
func EncodeJSON(p *sumtree.MerkleProof) ([]byte, error) {
	w, err := FromProof(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// DecodeJSON parses a JSON encoded proof. Unknown keys are ignored.
func DecodeJSON(data []byte) (*sumtree.MerkleProof, error) {
	var w Proof
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProof, err)
	}
	return w.ToProof()
}

// checkShape enforces the structural rules shared by every encoding.
func checkShape(p *sumtree.MerkleProof) error {
	if p == nil {
		return fmt.Errorf("%w: nil proof", ErrMalformedProof)
	}
	n := len(p.PathIndices)
	if n == 0 || n > sumtree.MaxDepth {
		return fmt.Errorf("%w: path length %d", ErrMalformedProof, n)
	}
	if len(p.SiblingsHashes) != n || len(p.SiblingsSums) != n {
		return fmt.Errorf("%w: %d sibling hashes and %d sibling sums for %d levels",
			ErrMalformedProof, len(p.SiblingsHashes), len(p.SiblingsSums), n)
	}
	for i, d := range p.PathIndices {
		if d != 0 && d != 1 {
			return fmt.Errorf("%w: path index %d is %d", ErrMalformedProof, i, d)
		}
	}
	for _, xs := range [][]*big.Int{
		{p.RootHash, p.RootSum, p.LeafHash, p.LeafSum}, p.SiblingsHashes, p.SiblingsSums,
	} {
		for _, x := range xs {
			if x == nil || x.Sign() < 0 {
				return fmt.Errorf("%w: missing or negative integer", ErrMalformedProof)
			}
		}
	}
	return nil
}

func decimals(xs []*big.Int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

func parseDecimal(field, s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a decimal integer: %q", ErrMalformedProof, field, s)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s is negative", ErrMalformedProof, field)
	}
	return x, nil
}

func parseDecimals(field string, ss []string) ([]*big.Int, error) {
	out := make([]*big.Int, len(ss))
	for i, s := range ss {
		x, err := parseDecimal(fmt.Sprintf("%s[%d]", field, i), s)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
