package fieldhash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/zeebo/blake3"
)

const (
	// ElementBytes is the size of a big endian field element encoding.
	ElementBytes = fr.Bytes

	// MaxPoseidonInputs is the widest poseidon instance available.
	MaxPoseidonInputs = 16
)

var (
	ErrNoInputs      = errors.New("fieldhash: at least one input is required")
	ErrTooManyInputs = errors.New("fieldhash: too many inputs")
	ErrBadInput      = errors.New("fieldhash: input is not a field element")
	ErrUnknownHash   = errors.New("fieldhash: unknown hash function")
)

// Func is assignable to sumtree.HashFunction.
type Func = func(inputs []*big.Int) (*big.Int, error)

var modulus = fr.Modulus()

// Modulus returns the BN254 scalar field prime.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// Poseidon hashes 1 to 16 field elements with the circomlib parameters.
func Poseidon(inputs []*big.Int) (*big.Int, error) {
	if len(inputs) > MaxPoseidonInputs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyInputs, len(inputs), MaxPoseidonInputs)
	}
	if err := checkInField(inputs); err != nil {
		return nil, err
	}
	return poseidon.Hash(inputs)
}

// MiMC hashes the inputs with the gnark-crypto MiMC sponge over BN254.
func MiMC(inputs []*big.Int) (*big.Int, error) {
	if err := checkInField(inputs); err != nil {
		return nil, err
	}

	h := mimc.NewMiMC()
	var e fr.Element
	for _, x := range inputs {
		e.SetBigInt(x)
		b := e.Bytes()
		if _, err := h.Write(b[:]); err != nil {
			return nil, err
		}
	}
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// SHA256 returns sha256 over the concatenated 32 byte encodings, reduced
// modulo the field prime.
func SHA256(inputs []*big.Int) (*big.Int, error) {
	buf, err := concat(inputs)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(buf)
	return reduce(digest[:]), nil
}

// Blake3 returns blake3-256 over the concatenated 32 byte encodings, reduced
// modulo the field prime.
func Blake3(inputs []*big.Int) (*big.Int, error) {
	buf, err := concat(inputs)
	if err != nil {
		return nil, err
	}
	digest := blake3.Sum256(buf)
	return reduce(digest[:]), nil
}

// ByName resolves a configured hash name, case insensitive.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "poseidon":
		return Poseidon, nil
	case "mimc":
		return MiMC, nil
	case "sha256":
		return SHA256, nil
	case "blake3":
		return Blake3, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
}

func checkInField(inputs []*big.Int) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	for i, x := range inputs {
		if x == nil || x.Sign() < 0 || x.Cmp(modulus) >= 0 {
			return fmt.Errorf("%w: input %d", ErrBadInput, i)
		}
	}
	return nil
}

func concat(inputs []*big.Int) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	buf := make([]byte, len(inputs)*ElementBytes)
	for i, x := range inputs {
		if x == nil || x.Sign() < 0 || x.BitLen() > ElementBytes*8 {
			return nil, fmt.Errorf("%w: input %d", ErrBadInput, i)
		}
		x.FillBytes(buf[i*ElementBytes : (i+1)*ElementBytes])
	}
	return buf, nil
}

func reduce(digest []byte) *big.Int {
	x := new(big.Int).SetBytes(digest)
	return x.Mod(x, modulus)
}
