package sumtree

import (
	"fmt"
	"math/big"
)

// HashFunction combines an ordered tuple of field elements into a single field
// element. Leaves hash 2 inputs, middle nodes hash 4.
//
// Implementations must be deterministic and must not retain or modify inputs.
type HashFunction func(inputs []*big.Int) (*big.Int, error)

// Node is a tree node. Neither big integer is modified once the node exists,
// nodes may be freely shared.
type Node struct {
	Hash *big.Int
	Sum  *big.Int
}

// Clone returns a node that shares no memory with n.
func (n Node) Clone() Node {
	return Node{Hash: cloneInt(n.Hash), Sum: cloneInt(n.Sum)}
}

// Equal reports whether both the hash and the sum of n and o are equal.
func (n Node) Equal(o Node) bool {
	if n.Hash == nil || n.Sum == nil || o.Hash == nil || o.Sum == nil {
		return false
	}
	return n.Hash.Cmp(o.Hash) == 0 && n.Sum.Cmp(o.Sum) == 0
}

// NewLeafNode creates the leaf committing to a single entry:
//
//	{ H(entryValue, entrySum), entrySum }
func NewLeafNode(entryValue, entrySum *big.Int, hash HashFunction) (Node, error) {
	if entryValue == nil {
		return Node{}, fmt.Errorf("%w: entry value is nil", ErrInvalidEntry)
	}
	if entrySum == nil {
		return Node{}, fmt.Errorf("%w: entry sum is nil", ErrInvalidEntry)
	}
	if entrySum.Sign() < 0 {
		return Node{}, fmt.Errorf("%w: entry sum can't be negative", ErrInvalidEntry)
	}
	if hash == nil {
		return Node{}, ErrMissingHashFunction
	}

	sum := cloneInt(entrySum)
	h, err := hash([]*big.Int{cloneInt(entryValue), sum})
	if err != nil {
		return Node{}, fmt.Errorf("%w: %w", ErrHashFailed, err)
	}
	if h == nil {
		return Node{}, fmt.Errorf("%w: nil hash output", ErrHashFailed)
	}
	return Node{Hash: h, Sum: sum}, nil
}

// NewMiddleNode creates the parent of left and right:
//
//	{ H(left.Hash, left.Sum, right.Hash, right.Sum), left.Sum + right.Sum }
//
// The sum is exact. A negative result can only come from malformed children
// and is reported as ErrInvalidSum.
func NewMiddleNode(left, right Node, hash HashFunction) (Node, error) {
	if hash == nil {
		return Node{}, ErrMissingHashFunction
	}
	if left.Hash == nil || left.Sum == nil || right.Hash == nil || right.Sum == nil {
		return Node{}, fmt.Errorf("%w: child node is incomplete", ErrInvalidSum)
	}

	h, err := hash([]*big.Int{left.Hash, left.Sum, right.Hash, right.Sum})
	if err != nil {
		return Node{}, fmt.Errorf("%w: %w", ErrHashFailed, err)
	}
	if h == nil {
		return Node{}, fmt.Errorf("%w: nil hash output", ErrHashFailed)
	}

	sum := new(big.Int).Add(left.Sum, right.Sum)
	if sum.Sign() < 0 {
		return Node{}, ErrInvalidSum
	}
	return Node{Hash: h, Sum: sum}, nil
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}
