package entries

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklesum/sumtree"
)

// progressInterval is how many inserts pass between debug progress lines.
const progressInterval = 4096

// Builder creates liabilities trees from entries.
type Builder struct {
	log   logger.Logger
	hash  sumtree.HashFunction
	depth int
	opts  []sumtree.TreeOption
}

// NewBuilder returns a builder for trees of the given depth. A depth of 0
// selects the smallest depth that holds the entries of each build.
func NewBuilder(log logger.Logger, hash sumtree.HashFunction, depth int, opts ...sumtree.TreeOption) *Builder {
	return &Builder{
		log:   log,
		hash:  hash,
		depth: depth,
		opts:  opts,
	}
}

// DepthFor returns the smallest depth, at least 1, whose capacity is n.
func DepthFor(n int) int {
	if n <= 2 {
		return 1
	}
	return bits.Len64(uint64(n - 1))
}

// Build inserts entries in order. Leaf i of the result is entries[i].
func (b *Builder) Build(entries []Entry) (*sumtree.Tree, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	depth := b.depth
	if depth == 0 {
		depth = DepthFor(len(entries))
	}
	tree, err := sumtree.New(b.hash, depth, b.opts...)
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		value, err := e.LeafValue(b.hash)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := tree.Insert(value, e.Balance); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if (i+1)%progressInterval == 0 {
			b.log.Debugf("inserted %d of %d entries", i+1, len(entries))
		}
	}

	root := tree.Root()
	b.log.Infof("built liabilities tree: entries=%d depth=%d liabilities=%s", len(entries), depth, root.Sum.String())
	return tree, nil
}

// BuildCSV parses a listing with ParseCSV and builds its tree.
func (b *Builder) BuildCSV(r io.Reader) (*sumtree.Tree, []Entry, error) {
	entries, err := ParseCSV(r)
	if err != nil {
		return nil, nil, err
	}
	tree, err := b.Build(entries)
	if err != nil {
		return nil, nil, err
	}
	return tree, entries, nil
}

// IndexOfEntry returns the leaf index of e in tree, or -1.
func IndexOfEntry(tree *sumtree.Tree, e Entry) (int, error) {
	value, err := e.LeafValue(tree.HashFunction())
	if err != nil {
		return -1, err
	}
	return tree.IndexOf(value, e.Balance), nil
}

// IndexOfUsername returns the leaf index of the unsalted entry
// (username, balance) in tree, or -1.
func IndexOfUsername(tree *sumtree.Tree, username string, balance *big.Int) (int, error) {
	value, err := UsernameToBigInt(username)
	if err != nil {
		return -1, err
	}
	return tree.IndexOf(value, balance), nil
}
