package solvency

import (
	"crypto"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-merklesum/sumtree"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSignedRoot decodes a message produced by RootSigner. The returned
// state has no root and will not verify until one is supplied.
func DecodeSignedRoot(
	codec dtcbor.CBORCodec, msg []byte,
) (*dtcose.CoseSign1Message, LiabilitiesState, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(
		msg, dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts()))
	if err != nil {
		return nil, LiabilitiesState{}, err
	}

	var unverifiedState LiabilitiesState
	if err = codec.UnmarshalInto(signed.Payload, &unverifiedState); err != nil {
		return nil, LiabilitiesState{}, err
	}
	return signed, unverifiedState, nil
}

// VerifySignedRoot re-encodes unverifiedState as the payload of signed and
// verifies the signature. unverifiedState must carry the root recovered by
// the verifier.
func VerifySignedRoot(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, unverifiedState LiabilitiesState, external []byte,
) error {
	if unverifiedState.RootHash == nil || unverifiedState.RootSum == nil {
		return ErrStateRootMissing
	}

	var err error
	signed.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}

// VerifySignedProof checks that proof is a valid inclusion proof and that its
// root is the one the operator signed.
func VerifySignedProof(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, unverifiedState LiabilitiesState,
	proof *sumtree.MerkleProof, hash sumtree.HashFunction, external []byte,
) error {
	if !sumtree.VerifyProof(proof, hash) {
		return ErrProofInvalid
	}
	return VerifySignedRoot(codec, keyProvider, signed, unverifiedState.WithProofRoot(proof), external)
}
