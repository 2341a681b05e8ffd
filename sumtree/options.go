package sumtree

// TreeOptions collects the optional configuration for New.
type TreeOptions struct {
	leafFilterExpected uint64
	leafFilterBPE      uint64
	leafFilterK        uint8
}

type TreeOption func(*TreeOptions)

// WithLeafFilter enables a Bloom prefilter over leaf hashes so that IndexOf
// can answer most misses without scanning the leaves. expectedLeaves sizes the
// filter, exceeding it only raises the false positive rate. A typical
// configuration is 10 bits per element with k=7 (about 1% false positives).
func WithLeafFilter(expectedLeaves uint64, bitsPerElement uint64, k uint8) TreeOption {
	return func(o *TreeOptions) {
		o.leafFilterExpected = expectedLeaves
		o.leafFilterBPE = bitsPerElement
		o.leafFilterK = k
	}
}
