package bloom

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "SBF1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0

	// DomainLeafHashV1 is the hash domain byte for filters keyed by leaf hash
	// encodings. It prefixes every element before hashing.
	DomainLeafHashV1 uint8 = 0xB1
)

var (
	ErrEmptyElem      = errors.New("bloom: element must not be empty")
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")

	ErrBadMagic    = errors.New("bloom: header magic invalid")
	ErrBadVersion  = errors.New("bloom: header version invalid")
	ErrBadBitOrder = errors.New("bloom: header bitOrder unsupported")
	ErrBadDomain   = errors.New("bloom: header hash domain unsupported")
	ErrBadK        = errors.New("bloom: header k invalid")
	ErrBadMBits    = errors.New("bloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

// HeaderV1 is the decoded form of the fixed region header.
//
//	[0:4]   magic
//	[4]     version
//	[5]     bit order
//	[6]     k
//	[7]     hash domain
//	[8:12]  mBits, big endian
//	[12:20] inserts, big endian
//	[20:32] reserved, zero
type HeaderV1 struct {
	BitOrder uint8
	K        uint8
	Domain   uint8
	MBits    uint32
	// NInserted counts InsertV1 calls, repeated inserts of the same element
	// included. A tree counts every insert and update, so this can exceed the
	// leaf capacity.
	NInserted uint64
}
