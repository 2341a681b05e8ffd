package bloom

import "encoding/binary"

const (
	offVersion  = 4
	offBitOrder = 5
	offK        = 6
	offDomain   = 7
	offMBits    = 8
	offInserted = 12
	offReserved = 20
)

func (h HeaderV1) validate() error {
	switch {
	case h.BitOrder != BitOrderLSB0:
		return ErrBadBitOrder
	case h.Domain != DomainLeafHashV1:
		return ErrBadDomain
	case h.K == 0:
		return ErrBadK
	case h.MBits == 0:
		return ErrBadMBits
	}
	return nil
}

// DecodeHeaderV1 reads the header at the start of region. ok is false, with a
// nil error, for a region whose magic is still zero.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	if binary.BigEndian.Uint32(region) == 0 {
		return HeaderV1{}, false, nil
	}
	if string(region[:offVersion]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[offVersion] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h = HeaderV1{
		BitOrder:  region[offBitOrder],
		K:         region[offK],
		Domain:    region[offDomain],
		MBits:     binary.BigEndian.Uint32(region[offMBits:]),
		NInserted: binary.BigEndian.Uint64(region[offInserted:]),
	}
	if err = h.validate(); err != nil {
		return HeaderV1{}, false, err
	}
	return h, true, nil
}

// EncodeHeaderV1 writes h to the start of region. The bitset is untouched.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if err := h.validate(); err != nil {
		return err
	}

	copy(region, MagicV1)
	region[offVersion] = VersionV1
	region[offBitOrder] = h.BitOrder
	region[offK] = h.K
	region[offDomain] = h.Domain
	binary.BigEndian.PutUint32(region[offMBits:], h.MBits)
	binary.BigEndian.PutUint64(region[offInserted:], h.NInserted)
	clear(region[offReserved:HeaderBytesV1])
	return nil
}
