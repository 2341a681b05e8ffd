package solvency

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	V1SumTreePrefix    = "v1/sumtrees"
	V1RootBlobName     = "root.cbor"
	V1ProofsDir        = "proofs"
	V1ProofBlobNameFmt = "%016d.json"
)

// TreePrefix returns the path prefix for every object of a published tree.
func TreePrefix(treeID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", V1SumTreePrefix, treeID)
}

// RootBlobPath returns the path of the signed root of a published tree.
func RootBlobPath(treeID uuid.UUID) string {
	return TreePrefix(treeID) + V1RootBlobName
}

// ProofBlobPath returns the path of the JSON inclusion proof for a leaf.
func ProofBlobPath(treeID uuid.UUID, leafIndex uint64) string {
	return TreePrefix(treeID) + V1ProofsDir + "/" + fmt.Sprintf(V1ProofBlobNameFmt, leafIndex)
}

// ParseTreeID recovers the tree id from any path produced by this package.
func ParseTreeID(storagePath string) (uuid.UUID, error) {
	prefix := V1SumTreePrefix + "/"
	i := strings.Index(storagePath, prefix)
	if i == -1 {
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrTreeIDInvalid, storagePath)
	}
	rest := storagePath[i+len(prefix):]
	if j := strings.Index(rest, "/"); j != -1 {
		rest = rest[:j]
	}
	id, err := uuid.Parse(rest)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrTreeIDInvalid, storagePath)
	}
	return id, nil
}
