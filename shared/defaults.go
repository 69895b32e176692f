// Package shared collects the small set of types, defaults and errors that
// are common to the policy, internal/htable and root packages. It mirrors
// the role the teacher repository's own shared package plays for its
// hashmap variants.
package shared

// HashFn is a function that returns the hash of 't'.
type HashFn[T any] func(t T) uint64

const (
	// DefaultNeighborhoodSize is the width N of the per-bucket neighborhood
	// bitmap used when a Config does not specify one.
	DefaultNeighborhoodSize = 32

	// DefaultMaxLoadFactor is the load factor at which an insert triggers a
	// rehash, used when a Config does not specify one.
	DefaultMaxLoadFactor = 0.95

	// DefaultSize is the minimum number of buckets a freshly constructed
	// table reserves.
	DefaultSize = 4

	// MaxNeighborhoodSize is the largest neighborhood width supported by the
	// 64-bit bitmap layout (62 presence bits + 2 reserved bits).
	MaxNeighborhoodSize = 62
)
