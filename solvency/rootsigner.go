package solvency

import (
	"crypto/ecdsa"
	"crypto/rand"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

// IdentifiableCoseSigner is a cose signer that can also name its key and
// provide the public half for verifiers.
type IdentifiableCoseSigner interface {
	cose.Signer
	PublicKey() (*ecdsa.PublicKey, error)
	KeyIdentifier() string
}

// RootSigner signs liabilities states.
type RootSigner struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewRootSigner(issuer string, cborCodec dtcbor.CBORCodec) RootSigner {
	return RootSigner{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// Sign1 signs state as a COSE Sign1 message with a CWT claims header naming
// the issuer, the subject and the verification key.
//
// The root hash and root sum are detached from the returned message after
// signing. Verifiers must obtain them from an inclusion proof.
func (rs RootSigner) Sign1(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, state LiabilitiesState, external []byte,
) ([]byte, error) {
	if state.RootHash == nil || state.RootSum == nil {
		return nil, ErrStateRootMissing
	}

	payload, err := rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
					rs.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	state.RootHash = nil
	state.RootSum = nil
	if msg.Payload, err = rs.cborCodec.MarshalCBOR(state); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// SignTree signs the current root of tree using coseSigner's own key.
func (rs RootSigner) SignTree(
	coseSigner IdentifiableCoseSigner, subject string, state LiabilitiesState,
) ([]byte, error) {
	publicKey, err := coseSigner.PublicKey()
	if err != nil {
		return nil, err
	}
	return rs.Sign1(coseSigner, coseSigner.KeyIdentifier(), publicKey, subject, state, nil)
}

func NewRootSignerCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}
