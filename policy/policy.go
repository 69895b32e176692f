// Package policy provides the bucket-index (growth) policy abstraction the
// hopscotch engine is built against. The engine never hardcodes a masking
// or modulus scheme; it only requires that Index return a value in
// [0, bucketCount) and that NextBucketCount strictly increase.
package policy

// Policy maps a hash value to a home bucket index for a given logical
// bucket count, and decides the next bucket count on growth. It is the
// abstract "bucket-index function" the spec carves out as an external
// collaborator of the hopscotch core.
type Policy interface {
	// Index returns a home bucket in [0, bucketCount).
	Index(hash uint64, bucketCount uint64) uint64

	// NextBucketCount returns the bucket count to grow to, given the
	// current one. It must return a value strictly greater than current.
	NextBucketCount(current uint64) uint64

	// RoundUp returns the smallest legal bucket count that is at least n.
	RoundUp(n uint64) uint64

	// MaxBucketCount reports the largest bucket count this policy can
	// represent.
	MaxBucketCount() uint64
}
