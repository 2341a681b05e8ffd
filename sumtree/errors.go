package sumtree

import "errors"

var (
	ErrMissingHashFunction = errors.New("sumtree: a hash function is required")
	ErrInvalidDepth        = errors.New("sumtree: the tree depth must be between 1 and 32")
	ErrMaxDepthExceeded    = errors.New("sumtree: the tree depth exceeds the maximum")
	ErrInvalidEntry        = errors.New("sumtree: invalid entry")
	ErrInvalidSum          = errors.New("sumtree: node sum can't be negative")
	ErrTreeFull            = errors.New("sumtree: the tree is full")
	ErrLeafNotFound        = errors.New("sumtree: the leaf does not exist in this tree")
	ErrHashFailed          = errors.New("sumtree: hash function failed")
	ErrLeafFilter          = errors.New("sumtree: leaf filter misconfigured")
)
