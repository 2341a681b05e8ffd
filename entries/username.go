package entries

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-merklesum/fieldhash"
)

// UsernameToBigInt reads the UTF-8 bytes of username as a big endian
// integer. The result must be a field element, in practice usernames of up to
// 31 bytes always are.
func UsernameToBigInt(username string) (*big.Int, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	x := new(big.Int).SetBytes([]byte(username))
	if x.Cmp(fieldhash.Modulus()) >= 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrUsernameTooLong, len(username))
	}
	return x, nil
}
