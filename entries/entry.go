package entries

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/sumtree"
)

// Entry is a single account in a liabilities listing.
type Entry struct {
	Username string
	// Salt is nil when the listing has no salt column.
	Salt    *big.Int
	Balance *big.Int
}

// NewEntry validates and builds an unsalted entry.
func NewEntry(username string, balance *big.Int) (Entry, error) {
	if _, err := UsernameToBigInt(username); err != nil {
		return Entry{}, err
	}
	if balance == nil || balance.Sign() < 0 {
		return Entry{}, ErrBadBalance
	}
	return Entry{Username: username, Balance: new(big.Int).Set(balance)}, nil
}

// LeafValue returns the value the tree commits to for e: the encoded
// username, or H(username, salt) for salted entries.
func (e Entry) LeafValue(hash sumtree.HashFunction) (*big.Int, error) {
	value, err := UsernameToBigInt(e.Username)
	if err != nil {
		return nil, err
	}
	if e.Salt == nil {
		return value, nil
	}
	salted, err := hash([]*big.Int{value, e.Salt})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sumtree.ErrHashFailed, err)
	}
	return salted, nil
}
