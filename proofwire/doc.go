package proofwire

/*
Package proofwire encodes sumtree inclusion proofs for transport and for
circuit witness generation.

Two encodings are provided:

  - JSON, with every big integer as a decimal string. This is the shape
    circom and snarkjs input files use, so a proof can be handed to a prover
    unchanged.
  - Deterministic CBOR with integer keys and big integers as minimal big
    endian byte strings. Encoding the same proof always yields the same bytes,
    which makes the encoding suitable for signing and content addressing.

Both decoders validate the shape of the proof (equal length arrays of 1 to 32
elements, directions 0 or 1, non negative integers) and report
ErrMalformedProof otherwise. Whether the proof is valid against a root is for
sumtree.VerifyProof to decide.

A CircuitInput is a proof with the root sum withheld and a target sum added.
The solvency circuit checks inclusion and that the root sum does not exceed
the target.
*/
