package solvency

import "errors"

var (
	ErrProofInvalid         = errors.New("solvency: inclusion proof does not verify")
	ErrInsolvent            = errors.New("solvency: liabilities exceed assets")
	ErrInvalidAssets        = errors.New("solvency: assets sum must be non negative")
	ErrStateRootMissing     = errors.New("solvency: the root of the state was not provided")
	ErrTreeIDInvalid        = errors.New("solvency: tree id is not a uuid")
	ErrCBORCodecNotProvided = errors.New("solvency: a CBOR codec was required but not provided")
)
