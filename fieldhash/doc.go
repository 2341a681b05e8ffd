package fieldhash

/*
Package fieldhash provides sumtree hash functions over the BN254 scalar field,
the field circom circuits work in.

Poseidon and MiMC are the arithmetization friendly choices, and Poseidon
matches circomlibjs output so trees built here can be proven in a circuit.
SHA256 and Blake3 are for trees that never enter a circuit: they hash the 32
byte big endian encoding of each input and reduce the digest into the field,
so their outputs remain valid inputs for further hashing.

All functions reject nil, negative and (for Poseidon and MiMC) out of field
inputs with an error rather than reducing them silently.
*/
