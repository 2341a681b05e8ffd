package bloom

// MBitsV1 returns the filter size in bits for expectedElements at
// bitsPerElement, or an error if either is zero or the product does not fit
// 32 bits.
func MBitsV1(expectedElements uint64, bitsPerElement uint64) (uint32, error) {
	if expectedElements == 0 || bitsPerElement == 0 {
		return 0, ErrBadMBits
	}
	const max = uint64(^uint32(0))
	if bitsPerElement > max || expectedElements > max/bitsPerElement {
		return 0, ErrMBitsOverflow
	}
	return uint32(expectedElements * bitsPerElement), nil
}

// RegionBytesV1 returns the byte length of a region holding a filter of mBits:
//
//	HeaderBytesV1 + ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return HeaderBytesV1 + bitsetBytes(mBits)
}

func bitsetBytes(mBits uint32) uint64 {
	return (uint64(mBits) + 7) / 8
}

// NewRegionV1 allocates and initializes a region sized for expectedElements.
func NewRegionV1(expectedElements uint64, bitsPerElement uint64, k uint8) ([]byte, error) {
	mBits, err := MBitsV1(expectedElements, bitsPerElement)
	if err != nil {
		return nil, err
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, mBits, k); err != nil {
		return nil, err
	}
	return region, nil
}
