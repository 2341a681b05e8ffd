package sumtree

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/bloom"
)

const (
	// MaxDepth is the largest supported tree depth.
	MaxDepth = 32
	// Arity is the number of children of every middle node.
	Arity = 2
)

// Tree is an incremental merkle sum tree of fixed depth.
//
// The zero value is not usable, create trees with New.
type Tree struct {
	hash  HashFunction
	depth int

	// zeroes[level] is the node standing in for an unwritten position at level.
	zeroes []Node
	// nodes[level] holds the materialized prefix of the level. Level 0 holds the
	// leaves in insertion order.
	nodes [][]Node
	root  Node

	leafFilter []byte
}

// New creates an empty tree of the given depth using hash for every node.
func New(hash HashFunction, depth int, opts ...TreeOption) (*Tree, error) {
	if hash == nil {
		return nil, ErrMissingHashFunction
	}
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidDepth, ErrMaxDepthExceeded, depth)
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	options := TreeOptions{}
	for _, o := range opts {
		o(&options)
	}

	t := &Tree{
		hash:   hash,
		depth:  depth,
		zeroes: make([]Node, depth),
		nodes:  make([][]Node, depth),
	}

	zero, err := NewLeafNode(big.NewInt(0), big.NewInt(0), hash)
	if err != nil {
		return nil, err
	}
	for level := 0; level < depth; level++ {
		t.zeroes[level] = zero
		if zero, err = NewMiddleNode(zero, zero, hash); err != nil {
			return nil, err
		}
	}
	t.root = zero

	if options.leafFilterExpected != 0 {
		t.leafFilter, err = bloom.NewRegionV1(
			options.leafFilterExpected, options.leafFilterBPE, options.leafFilterK)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLeafFilter, err)
		}
	}

	return t, nil
}

// Root returns the current root. The sum is the total of all leaf sums.
func (t *Tree) Root() Node {
	return t.root.Clone()
}

// Depth returns the number of levels below the root.
func (t *Tree) Depth() int {
	return t.depth
}

// Arity returns the number of children per node, always 2.
func (t *Tree) Arity() int {
	return Arity
}

// Size returns the number of leaf positions written so far. Deleted leaves
// still occupy their position and are counted.
func (t *Tree) Size() int {
	return len(t.nodes[0])
}

// Capacity returns the maximum number of leaves, 2^depth.
func (t *Tree) Capacity() uint64 {
	return uint64(1) << uint(t.depth)
}

// Leaves returns a copy of the leaves in insertion order.
func (t *Tree) Leaves() []Node {
	return cloneNodes(t.nodes[0])
}

// Zeroes returns a copy of the per level zero nodes.
func (t *Tree) Zeroes() []Node {
	return cloneNodes(t.zeroes)
}

// Leaf returns a copy of the leaf at index.
func (t *Tree) Leaf(index int) (Node, error) {
	if err := t.checkLeafIndex(index); err != nil {
		return Node{}, err
	}
	return t.nodes[0][index].Clone(), nil
}

// HashFunction returns the hash the tree was created with.
func (t *Tree) HashFunction() HashFunction {
	return t.hash
}

func (t *Tree) checkLeafIndex(index int) error {
	if index < 0 || index >= len(t.nodes[0]) {
		return fmt.Errorf("%w: index %d, size %d", ErrLeafNotFound, index, len(t.nodes[0]))
	}
	return nil
}

// nodeAt returns the node at (level, index), or the zero node of the level if
// that position has not been written.
func (t *Tree) nodeAt(level int, index int) Node {
	if index < len(t.nodes[level]) {
		return t.nodes[level][index]
	}
	return t.zeroes[level]
}

// computePath returns the nodes on the path from leaf, placed at index, to
// the root, as they would be after writing leaf. The tree is not modified.
//
// path[level] is the node to store at (level, index>>level).
func (t *Tree) computePath(index int, leaf Node) ([]Node, Node, error) {
	path := make([]Node, t.depth)

	node := leaf
	for level := 0; level < t.depth; level++ {
		path[level] = node

		var left, right Node
		if index%Arity == 0 {
			left, right = node, t.nodeAt(level, index+1)
		} else {
			left, right = t.nodeAt(level, index-1), node
		}

		parent, err := NewMiddleNode(left, right, t.hash)
		if err != nil {
			return nil, Node{}, err
		}
		node = parent
		index /= Arity
	}
	return path, node, nil
}

// commitPath stores a path produced by computePath and sets the new root.
//
// Every level is a contiguous prefix, so index is at most the level length:
// appends land exactly at the end.
func (t *Tree) commitPath(index int, path []Node, root Node) error {
	if t.leafFilter != nil {
		if err := bloom.InsertV1(t.leafFilter, leafFilterKey(path[0].Hash)); err != nil {
			return fmt.Errorf("%w: %w", ErrLeafFilter, err)
		}
	}

	for level, node := range path {
		if index < len(t.nodes[level]) {
			t.nodes[level][index] = node
		} else {
			t.nodes[level] = append(t.nodes[level], node)
		}
		index /= Arity
	}
	t.root = root
	return nil
}

func leafFilterKey(hash *big.Int) []byte {
	b := hash.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
