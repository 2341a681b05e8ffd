package sumtree

import (
	"errors"
	"math/big"
	"testing"

	"github.com/forestrie/go-merklesum/fieldhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b(x int64) *big.Int { return big.NewInt(x) }

func newTestTree(t *testing.T, depth int, opts ...TreeOption) *Tree {
	t.Helper()
	tree, err := New(fieldhash.Poseidon, depth, opts...)
	require.NoError(t, err)
	return tree
}

func TestNewDepthBounds(t *testing.T) {
	tests := []struct {
		depth   int
		wantErr error
	}{
		{depth: -1, wantErr: ErrInvalidDepth},
		{depth: 0, wantErr: ErrInvalidDepth},
		{depth: 1},
		{depth: 16},
		{depth: 32},
		{depth: 33, wantErr: ErrMaxDepthExceeded},
	}
	for _, tt := range tests {
		tree, err := New(fieldhash.Poseidon, tt.depth)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, "depth %d", tt.depth)
			require.ErrorIs(t, err, ErrInvalidDepth, "depth %d", tt.depth)
			require.Nil(t, tree)
			continue
		}
		require.NoError(t, err, "depth %d", tt.depth)
		assert.Equal(t, tt.depth, tree.Depth())
		assert.Equal(t, 2, tree.Arity())
		assert.Equal(t, 0, tree.Size())
		assert.Len(t, tree.Zeroes(), tt.depth)
	}
}

func TestNewMissingHash(t *testing.T) {
	_, err := New(nil, 4)
	require.ErrorIs(t, err, ErrMissingHashFunction)
}

func TestZeroLadder(t *testing.T) {
	tree := newTestTree(t, 3)
	zeroes := tree.Zeroes()

	leaf, err := NewLeafNode(b(0), b(0), fieldhash.Poseidon)
	require.NoError(t, err)
	assert.True(t, leaf.Equal(zeroes[0]))

	for level := 1; level < 3; level++ {
		parent, err := NewMiddleNode(zeroes[level-1], zeroes[level-1], fieldhash.Poseidon)
		require.NoError(t, err)
		assert.True(t, parent.Equal(zeroes[level]), "level %d", level)
	}

	root, err := NewMiddleNode(zeroes[2], zeroes[2], fieldhash.Poseidon)
	require.NoError(t, err)
	assert.True(t, root.Equal(tree.Root()))
	assert.Equal(t, 0, tree.Root().Sum.Sign())
}

func TestPoseidonInterop(t *testing.T) {
	tree := newTestTree(t, 1)
	require.NoError(t, tree.Insert(b(0), b(50)))
	require.NoError(t, tree.Insert(b(1), b(30)))

	h1, err := fieldhash.Poseidon([]*big.Int{b(0), b(50)})
	require.NoError(t, err)
	h2, err := fieldhash.Poseidon([]*big.Int{b(1), b(30)})
	require.NoError(t, err)
	root, err := fieldhash.Poseidon([]*big.Int{h1, b(50), h2, b(30)})
	require.NoError(t, err)

	leaves := tree.Leaves()
	assert.Equal(t, 0, h1.Cmp(leaves[0].Hash))
	assert.Equal(t, 0, h2.Cmp(leaves[1].Hash))
	assert.Equal(t, 0, root.Cmp(tree.Root().Hash))
	assert.Equal(t, int64(80), tree.Root().Sum.Int64())
}

func TestDepthOneScenario(t *testing.T) {
	tree := newTestTree(t, 1)
	require.NoError(t, tree.Insert(b(0), b(50)))
	require.NoError(t, tree.Insert(b(1), b(30)))
	assert.Equal(t, int64(80), tree.Root().Sum.Int64())

	before := tree.Root()
	err := tree.Insert(b(2), b(1))
	require.ErrorIs(t, err, ErrTreeFull)
	assert.True(t, before.Equal(tree.Root()))
	assert.Equal(t, 2, tree.Size())
}

func TestDepthSixteenScenario(t *testing.T) {
	tree := newTestTree(t, 16)
	for i := int64(0); i < 10; i++ {
		require.NoError(t, tree.Insert(b(i), b(i+1)))
	}
	assert.Equal(t, int64(55), tree.Root().Sum.Int64())

	proof, err := tree.CreateProof(5)
	require.NoError(t, err)
	assert.Equal(t, int64(55), proof.RootSum.Int64())
	assert.Equal(t, int64(6), proof.LeafSum.Int64())
	assert.Equal(t, uint64(5), proof.LeafIndex())
	assert.True(t, tree.VerifyProof(proof))
}

func TestSumConservation(t *testing.T) {
	tree := newTestTree(t, 4)
	total := new(big.Int)
	for i := int64(0); i < 11; i++ {
		sum := new(big.Int).Mul(b(i*i+1), big.NewInt(1_000_000_007))
		require.NoError(t, tree.Insert(b(i), sum))
		total.Add(total, sum)
		assert.Equal(t, 0, total.Cmp(tree.Root().Sum))
	}

	// every materialized middle node sums its children
	for level := 1; level < tree.depth; level++ {
		for i, n := range tree.nodes[level] {
			left := tree.nodeAt(level-1, 2*i)
			right := tree.nodeAt(level-1, 2*i+1)
			want := new(big.Int).Add(left.Sum, right.Sum)
			assert.Equal(t, 0, want.Cmp(n.Sum), "level %d index %d", level, i)
		}
	}

	// sums are exact, not reduced into the field. sha256 accepts sums beyond
	// the field where poseidon would not.
	huge := new(big.Int).Add(fieldhash.Modulus(), b(-1))
	tree2, err := New(fieldhash.SHA256, 2)
	require.NoError(t, err)
	require.NoError(t, tree2.Insert(b(1), huge))
	require.NoError(t, tree2.Insert(b(2), huge))
	assert.Equal(t, 0, new(big.Int).Add(huge, huge).Cmp(tree2.Root().Sum))
}

func TestNegativeSumRejected(t *testing.T) {
	tree := newTestTree(t, 3)
	require.NoError(t, tree.Insert(b(1), b(10)))
	before := tree.Root()

	err := tree.Insert(b(2), b(-1))
	require.ErrorIs(t, err, ErrInvalidEntry)
	assert.True(t, before.Equal(tree.Root()))
	assert.Equal(t, 1, tree.Size())

	err = tree.Update(0, b(2), b(-5))
	require.ErrorIs(t, err, ErrInvalidEntry)
	assert.True(t, before.Equal(tree.Root()))

	require.ErrorIs(t, tree.Insert(nil, b(1)), ErrInvalidEntry)
	require.ErrorIs(t, tree.Insert(b(1), nil), ErrInvalidEntry)
}

func TestHashFailureLeavesTreeUnchanged(t *testing.T) {
	boom := errors.New("boom")
	failOn := b(666)
	hash := func(inputs []*big.Int) (*big.Int, error) {
		for _, x := range inputs {
			if x.Cmp(failOn) == 0 {
				return nil, boom
			}
		}
		return fieldhash.SHA256(inputs)
	}

	tree, err := New(hash, 3)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(b(1), b(10)))
	before := tree.Root()

	err = tree.Insert(failOn, b(1))
	require.ErrorIs(t, err, ErrHashFailed)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tree.Size())
	assert.True(t, before.Equal(tree.Root()))

	// poseidon rejects values outside the field
	ptree := newTestTree(t, 2)
	err = ptree.Insert(fieldhash.Modulus(), b(1))
	require.ErrorIs(t, err, ErrHashFailed)
	assert.Equal(t, 0, ptree.Size())
}

func TestUpdate(t *testing.T) {
	tree := newTestTree(t, 3)
	for i := int64(0); i < 5; i++ {
		require.NoError(t, tree.Insert(b(i), b(10)))
	}

	require.NoError(t, tree.Update(2, b(42), b(7)))
	assert.Equal(t, int64(47), tree.Root().Sum.Int64())
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 2, tree.IndexOf(b(42), b(7)))
	assert.Equal(t, -1, tree.IndexOf(b(2), b(10)))

	// same root as building the final state directly
	direct := newTestTree(t, 3)
	for i := int64(0); i < 5; i++ {
		if i == 2 {
			require.NoError(t, direct.Insert(b(42), b(7)))
			continue
		}
		require.NoError(t, direct.Insert(b(i), b(10)))
	}
	assert.True(t, direct.Root().Equal(tree.Root()))

	require.ErrorIs(t, tree.Update(5, b(1), b(1)), ErrLeafNotFound)
	require.ErrorIs(t, tree.Update(-1, b(1), b(1)), ErrLeafNotFound)
}

func TestDelete(t *testing.T) {
	tree := newTestTree(t, 3)
	require.NoError(t, tree.Insert(b(1), b(10)))
	require.NoError(t, tree.Insert(b(2), b(20)))
	require.NoError(t, tree.Insert(b(3), b(30)))

	require.NoError(t, tree.Delete(1))
	assert.Equal(t, int64(40), tree.Root().Sum.Int64())
	assert.Equal(t, -1, tree.IndexOf(b(2), b(20)))
	assert.Equal(t, 3, tree.Size())
	assert.True(t, tree.Leaves()[1].Equal(tree.Zeroes()[0]))

	// later inserts still append after the deleted slot
	require.NoError(t, tree.Insert(b(4), b(40)))
	assert.Equal(t, 3, tree.IndexOf(b(4), b(40)))

	require.ErrorIs(t, tree.Delete(4), ErrLeafNotFound)

	// deleting every leaf restores the empty root
	for i := 0; i < tree.Size(); i++ {
		require.NoError(t, tree.Delete(i))
	}
	empty := newTestTree(t, 3)
	assert.True(t, empty.Root().Equal(tree.Root()))
}

func TestIndexOf(t *testing.T) {
	tree := newTestTree(t, 4)
	for i := int64(0); i < 6; i++ {
		require.NoError(t, tree.Insert(b(100+i), b(i)))
	}
	assert.Equal(t, 3, tree.IndexOf(b(103), b(3)))
	assert.Equal(t, -1, tree.IndexOf(b(200), b(3)))

	// the leaf hash commits to the sum, a different sum does not match
	assert.Equal(t, -1, tree.IndexOf(b(103), b(4)))
	assert.Equal(t, -1, tree.IndexOf(b(103), b(-3)))

	// duplicates resolve to the first position
	require.NoError(t, tree.Insert(b(101), b(1)))
	assert.Equal(t, 1, tree.IndexOf(b(101), b(1)))
}

func TestOrderSensitivity(t *testing.T) {
	t1 := newTestTree(t, 2)
	require.NoError(t, t1.Insert(b(1), b(5)))
	require.NoError(t, t1.Insert(b(2), b(6)))

	t2 := newTestTree(t, 2)
	require.NoError(t, t2.Insert(b(2), b(6)))
	require.NoError(t, t2.Insert(b(1), b(5)))

	assert.NotEqual(t, 0, t1.Root().Hash.Cmp(t2.Root().Hash))
	assert.Equal(t, 0, t1.Root().Sum.Cmp(t2.Root().Sum))
}

func TestAccessorsReturnCopies(t *testing.T) {
	tree := newTestTree(t, 2)
	require.NoError(t, tree.Insert(b(1), b(5)))

	leaves := tree.Leaves()
	leaves[0].Sum.SetInt64(1000)
	leaves[0] = Node{}
	zeroes := tree.Zeroes()
	zeroes[0].Hash.SetInt64(1)
	root := tree.Root()
	root.Sum.SetInt64(99)

	assert.Equal(t, int64(5), tree.Leaves()[0].Sum.Int64())
	assert.Equal(t, int64(5), tree.Root().Sum.Int64())
	assert.Equal(t, 0, tree.IndexOf(b(1), b(5)))

	leaf, err := tree.Leaf(0)
	require.NoError(t, err)
	assert.True(t, leaf.Equal(tree.Leaves()[0]))
	_, err = tree.Leaf(1)
	require.ErrorIs(t, err, ErrLeafNotFound)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, uint64(2), newTestTree(t, 1).Capacity())
	assert.Equal(t, uint64(1)<<32, newTestTree(t, 32).Capacity())
}
