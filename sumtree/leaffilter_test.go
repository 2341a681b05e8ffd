package sumtree

import (
	"testing"

	"github.com/forestrie/go-merklesum/bloom"
	"github.com/forestrie/go-merklesum/fieldhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafFilterIndexOf(t *testing.T) {
	tree := newTestTree(t, 6, WithLeafFilter(64, 10, 7))
	require.NotNil(t, tree.leafFilter)

	for i := int64(0); i < 40; i++ {
		require.NoError(t, tree.Insert(b(i), b(i+1)))
	}
	for i := int64(0); i < 40; i++ {
		assert.Equal(t, int(i), tree.IndexOf(b(i), b(i+1)))
	}
	for i := int64(1000); i < 1040; i++ {
		assert.Equal(t, -1, tree.IndexOf(b(i), b(1)))
	}

	h, ok, err := bloom.DecodeHeaderV1(tree.leafFilter)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(40), h.NInserted)

	// bits are never cleared, deleted entries still resolve through the scan
	require.NoError(t, tree.Delete(5))
	assert.Equal(t, -1, tree.IndexOf(b(5), b(6)))

	require.NoError(t, tree.Update(6, b(500), b(1)))
	assert.Equal(t, 6, tree.IndexOf(b(500), b(1)))
}

func TestLeafFilterMisconfigured(t *testing.T) {
	_, err := New(fieldhash.Poseidon, 4, WithLeafFilter(16, 0, 7))
	require.ErrorIs(t, err, ErrLeafFilter)
}
