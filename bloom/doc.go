package bloom

/*

# Bloom prefilter for sum tree leaf lookups

A sum tree answers IndexOf with a linear scan over its leaves. For large trees
most lookups of absent entries can be answered without the scan: this package
provides a single Bloom filter over leaf hash encodings, held in a
preallocated byte region with a small versioned header.

	+----------------------+  32B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  ceil(mBits/8) bytes
	| bitset               |
	+----------------------+

Bloom filters are a *probabilistic prefilter* only:

- "definitely not present" is exact.
- "maybe present" may be a false positive, so the caller still scans.

Bits are never cleared. A leaf that is later overwritten (updated or zeroed)
stays "maybe present", which only costs a scan.

Elements may be any non-empty byte string. Indexing uses double hashing over
SHA-256( domain || elem ), where domain is recorded in the header
(DomainLeafHashV1 for leaf hash filters). The insert counter is 64 bits wide:
a tree inserts on every update as well as every append.

Functions are suffixed with the format version (InitV1, InsertV1, ...) so an
incompatible layout can be introduced side by side.

*/
