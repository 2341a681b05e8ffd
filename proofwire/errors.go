package proofwire

import "errors"

var (
	ErrMalformedProof = errors.New("proofwire: malformed proof")
	ErrSumOverflow    = errors.New("proofwire: sum exceeds the circuit range")
)
