package shared

import "errors"

var (
	// ErrOutOfRange signals an out of range request, e.g. a load factor
	// outside (0.0, 1.0] or a neighborhood size outside [1, 62].
	ErrOutOfRange = errors.New("out of range")

	// ErrKeyNotFound is returned by At when the requested key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCapacityExceeded is returned when a growth policy's MaxBucketCount
	// would be exceeded by a requested reservation or rehash.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrAllocationFailed is returned when the configured Allocator refuses
	// an allocation requested by the engine.
	ErrAllocationFailed = errors.New("allocation failed")
)
