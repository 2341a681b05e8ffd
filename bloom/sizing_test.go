package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMBitsV1(t *testing.T) {
	tests := []struct {
		name     string
		expected uint64
		bpe      uint64
		want     uint32
		wantErr  error
	}{
		{name: "one", expected: 1, bpe: 10, want: 10},
		{name: "bytes", expected: 8, bpe: 8, want: 64},
		{name: "max", expected: 1, bpe: uint64(^uint32(0)), want: ^uint32(0)},
		{name: "noElements", expected: 0, bpe: 10, wantErr: ErrBadMBits},
		{name: "noBits", expected: 10, bpe: 0, wantErr: ErrBadMBits},
		{name: "wideBPE", expected: 1, bpe: uint64(^uint32(0)) + 1, wantErr: ErrMBitsOverflow},
		{name: "product", expected: uint64(^uint32(0)), bpe: 2, wantErr: ErrMBitsOverflow},
		{name: "noWrap", expected: 1 << 40, bpe: 1 << 30, wantErr: ErrMBitsOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MBitsV1(tt.expected, tt.bpe)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegionBytesV1(t *testing.T) {
	require.Equal(t, uint64(HeaderBytesV1+2), RegionBytesV1(10))
	require.Equal(t, uint64(40), RegionBytesV1(64))
	require.Equal(t, uint64(HeaderBytesV1)+(uint64(^uint32(0))+7)/8, RegionBytesV1(^uint32(0)))
}

func TestNewRegionV1(t *testing.T) {
	region, err := NewRegionV1(16, 10, 7)
	require.NoError(t, err)
	require.Len(t, region, int(RegionBytesV1(160)))

	h, ok, err := DecodeHeaderV1(region)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, HeaderV1{BitOrder: BitOrderLSB0, K: 7, Domain: DomainLeafHashV1, MBits: 160}, h)

	_, err = NewRegionV1(0, 10, 7)
	require.ErrorIs(t, err, ErrBadMBits)

	_, err = NewRegionV1(uint64(^uint32(0)), 2, 7)
	require.ErrorIs(t, err, ErrMBitsOverflow)

	_, err = NewRegionV1(16, 10, 0)
	require.ErrorIs(t, err, ErrBadK)
}
