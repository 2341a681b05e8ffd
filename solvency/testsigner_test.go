package solvency

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/azkeys"
	"github.com/stretchr/testify/require"
)

func testGenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func testNewRootSigner(t *testing.T, issuer string) RootSigner {
	cborCodec, err := NewRootSignerCodec()
	require.NoError(t, err)
	return NewRootSigner(issuer, cborCodec)
}

func testCoseSigner(t *testing.T) *azkeys.TestCoseSigner {
	return azkeys.NewTestCoseSigner(t, testGenerateECKey(t, elliptic.P256()))
}
