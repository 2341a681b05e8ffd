package sumtree

/*

# Incremental Merkle sum tree

A fixed depth binary merkle tree in which every node carries a field element
hash and an arbitrary precision, non-negative sum. The root commits to every
(value, sum) entry in the tree and to the exact total of all sums. This is the
structure used for proofs of solvency: an exchange commits to its liabilities
with the root, each user can check their own entry is included, and a circuit
can show the root sum is covered by the assets without revealing any entry.

## Hashing rule

	leaf   = { H(value, sum),                      sum }
	middle = { H(l.hash, l.sum, r.hash, r.sum),   l.sum + r.sum }

H is injected (see HashFunction) and is usually Poseidon over the BN254 scalar
field so that circom circuits can recompute the same root. Sums are never
reduced, only the hash output lives in the field.

## Shape

The tree has depth levels of nodes below the root. Level 0 holds the leaves in
insertion order, so a tree of depth d holds at most 2^d entries. Positions that
have never been written read as the zero node of their level:

	zeroes[0]   = leaf(0, 0)
	zeroes[i+1] = middle(zeroes[i], zeroes[i])

and the root of an empty tree is middle(zeroes[d-1], zeroes[d-1]).

For depth 2 and three inserted leaves a, b, c:

	          root
	        /      \
	      ab        c0
	     /  \      /  \
	    a    b    c    z0     z0 = zeroes[0]

Only the positions on a path from a written leaf are ever materialized.

## Mutations

Insert appends at the next free leaf position, Update overwrites a position and
Delete overwrites it with zeroes[0]. Each recomputes the depth nodes on the
path to the root. The new path is built completely before any of it is
written, so a failing mutation (negative sum, hash error, full tree) leaves
the tree untouched.

## Proofs

A MerkleProof lists, from the leaf level upwards, the sibling hash and sum at
each level and whether the proven node was the left (0) or right (1) child.
VerifyProof folds the leaf back up with the same middle node rule and accepts
only if both the hash and the sum of the result match the claimed root.

## Concurrency

A Tree has a single owner. It does no locking; callers sharing a tree across
goroutines must serialize mutations themselves. Proof creation only reads, so
concurrent CreateProof calls are fine when nothing is mutating.

*/
