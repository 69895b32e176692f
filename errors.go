package hopscotch

import "github.com/nlowell/hopscotch/shared"

// Sentinel errors surfaced by this package's operations, re-exported from
// shared the same way the teacher repository defines ErrOutOfRange
// directly in its root package (robin_hood.go) even though the
// sub-packages reach it via `shared.ErrOutOfRange`.
var (
	// ErrOutOfRange signals a load factor or neighborhood size outside its
	// legal range.
	ErrOutOfRange = shared.ErrOutOfRange

	// ErrKeyNotFound is returned by At when the key is absent.
	ErrKeyNotFound = shared.ErrKeyNotFound

	// ErrCapacityExceeded is returned when growth would exceed the growth
	// policy's MaxBucketCount.
	ErrCapacityExceeded = shared.ErrCapacityExceeded

	// ErrAllocationFailed is returned when the configured Allocator
	// refuses an allocation.
	ErrAllocationFailed = shared.ErrAllocationFailed
)
