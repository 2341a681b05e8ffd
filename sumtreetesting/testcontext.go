package sumtreetesting

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklesum/sumtree"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	// Seed makes the generated entries the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// MaxBalance bounds generated balances, defaults to DefaultMaxBalance.
	MaxBalance int64
}

const DefaultMaxBalance = 1_000_000

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Cfg TestConfig

	rng *rand.Rand
}

// TestEntry is a generated (value, sum) pair ready for insertion.
type TestEntry struct {
	Username string
	Value    *big.Int
	Sum      *big.Int
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	logger.New("NOOP")
	if cfg.MaxBalance == 0 {
		cfg.MaxBalance = DefaultMaxBalance
	}
	return TestContext{
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		T:   t,
		Cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// GenerateEntries returns n entries with distinct usernames user0000, user0001
// and so on, and pseudo random balances in [0, MaxBalance).
func (c *TestContext) GenerateEntries(n int) []TestEntry {
	out := make([]TestEntry, n)
	for i := range out {
		username := userName(i)
		out[i] = TestEntry{
			Username: username,
			Value:    new(big.Int).SetBytes([]byte(username)),
			Sum:      big.NewInt(c.rng.Int63n(c.Cfg.MaxBalance)),
		}
	}
	return out
}

// Total returns the sum of the entry sums.
func Total(entries []TestEntry) *big.Int {
	total := new(big.Int)
	for _, e := range entries {
		total.Add(total, e.Sum)
	}
	return total
}

// NewTree builds a tree of depth over entries, failing the test on error.
func (c *TestContext) NewTree(hash sumtree.HashFunction, depth int, entries []TestEntry) *sumtree.Tree {
	c.T.Helper()
	tree, err := sumtree.New(hash, depth)
	require.NoError(c.T, err)
	for _, e := range entries {
		require.NoError(c.T, tree.Insert(e.Value, e.Sum))
	}
	return tree
}

func userName(i int) string {
	const digits = "0123456789"
	b := []byte("user0000")
	for j := len(b) - 1; j >= 4 && i > 0; j-- {
		b[j] = digits[i%10]
		i /= 10
	}
	return string(b)
}
