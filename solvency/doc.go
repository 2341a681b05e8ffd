package solvency

/*
Package solvency publishes signed commitments to a liabilities sum tree and
checks proofs of solvency against them.

An operator builds a sumtree.Tree over its customer balances, signs the root
with RootSigner and publishes the signature and one inclusion proof per
customer with a Publisher. The signed payload is a LiabilitiesState. Its root
hash and root sum are detached after signing, so the signature can only be
verified by supplying a root recovered from an inclusion proof:

 1. DecodeSignedRoot returns the signed message and the unverified state.
 2. Fetch the customer's inclusion proof and check it with sumtree.VerifyProof.
 3. VerifySignedProof puts the proof's root back into the state and verifies
    the signature. Success binds the customer's balance to the signed total.

CheckSolvency establishes that the liabilities committed to by a proof do not
exceed a given assets total.
*/
