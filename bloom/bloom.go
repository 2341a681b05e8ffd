package bloom

import (
	"crypto/sha256"
	"encoding/binary"
)

// InitV1 writes a fresh header for a filter of mBits bits with k probes and
// clears the bitset. region must hold at least RegionBytesV1(mBits) bytes.
func InitV1(region []byte, mBits uint32, k uint8) error {
	if mBits == 0 {
		return ErrBadMBits
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder: BitOrderLSB0,
		K:        k,
		Domain:   DomainLeafHashV1,
		MBits:    mBits,
	})
}

// InsertV1 inserts elem and increments NInserted in the header.
func InsertV1(region []byte, elem []byte) error {
	bitset, h, err := bitsetV1(region, elem)
	if err != nil {
		return err
	}

	h1, h2 := hashPairV1(h.Domain, elem)
	setBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2)

	h.NInserted++
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for elem.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, elem []byte) (bool, error) {
	bitset, h, err := bitsetV1(region, elem)
	if err != nil {
		return false, err
	}

	h1, h2 := hashPairV1(h.Domain, elem)
	return testBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2), nil
}

func bitsetV1(region []byte, elem []byte) ([]byte, HeaderV1, error) {
	if len(elem) == 0 {
		return nil, HeaderV1{}, ErrEmptyElem
	}

	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return nil, HeaderV1{}, err
	}
	if !ok {
		return nil, HeaderV1{}, ErrNotInitialized
	}

	end := RegionBytesV1(h.MBits)
	if uint64(len(region)) < end {
		return nil, HeaderV1{}, ErrBadRegionSize
	}
	return region[HeaderBytesV1:end], h, nil
}

func hashPairV1(domain uint8, elem []byte) (h1 uint64, h2 uint64) {
	hasher := sha256.New()
	_, _ = hasher.Write([]byte{domain})
	_, _ = hasher.Write(elem)
	sum := hasher.Sum(nil)
	h1 = binary.BigEndian.Uint64(sum[0:8])
	h2 = binary.BigEndian.Uint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func setBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		bitset[j>>3] |= 1 << uint8(j&7)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		if (bitset[j>>3] & (1 << uint8(j&7))) == 0 {
			return false
		}
	}
	return true
}
