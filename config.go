// Package hopscotch implements an in-memory associative container built
// on hopscotch hashing: open addressing with collisions bounded to a
// fixed neighborhood around each key's home bucket, backed by a doubly
// linked overflow list for the rare key that cannot be placed within its
// neighborhood. It offers average O(1) Get/Put/Erase with a lookup that
// touches at most one contiguous neighborhood window of the bucket
// array.
//
// Map[K, V] is the associative-array form; Set[K] is the value-less form.
// Both are thin façades over internal/htable.Engine, mirroring the
// teacher repository's HashMap façade over its five interchangeable
// variant packages (hopscotch, robin, unordered, flat, clrobin) — generalized
// here to one algorithm with a pluggable bucket-index policy instead of
// a pluggable algorithm.
package hopscotch

import (
	"github.com/nlowell/hopscotch/internal/htable"
	"github.com/nlowell/hopscotch/policy"
	"github.com/nlowell/hopscotch/shared"
)

// Config configures a Map or Set at construction time, mirroring the
// teacher's `hashmaps.Config[K, V]` factory struct (map.go).
type Config[K comparable, V any] struct {
	// Size is the initial number of home buckets, rounded up by the growth
	// policy. If unset or below DefaultSize, DefaultSize is used.
	Size uint64

	// NeighborhoodSize is N, the width of the per-bucket neighborhood
	// bitmap. Must be in [1, 62]. If unset, DefaultNeighborhoodSize is
	// used.
	NeighborhoodSize uint64

	// MaxLoadFactor is the load factor at which an insert triggers a
	// rehash. Must be in (0.0, 1.0]. If unset, DefaultMaxLoadFactor is
	// used.
	MaxLoadFactor float64

	// MaxProbes caps forward linear probing for an empty bucket before
	// falling back to overflow/rehash (spec max_probes_for_empty_bucket).
	// If unset, 10*NeighborhoodSize is used.
	MaxProbes uint64

	// GrowthPolicy maps hashes to home buckets and decides the next
	// bucket count on growth. If unset, policy.PowerOfTwo{} is used.
	GrowthPolicy policy.Policy

	// StoreHash caches each entry's hash in its slot, trading memory for
	// faster rehashes and fewer equality calls on lookup collisions.
	StoreHash bool

	// Hasher overrides the default reflection-based hasher. Must be set
	// for key types GetHasher does not support (structs, slices, etc.).
	Hasher shared.HashFn[K]

	// Equal overrides the default `==` comparison. Required alongside
	// Hasher whenever `==` is not the intended equality for K.
	Equal func(a, b K) bool

	// Allocator is consulted for every bucket-array allocation (initial
	// and on rehash); overflow-node allocations do not go through it.
	// If unset, htable.NopAllocator{} is used (the engine then relies on
	// the Go runtime allocator via plain make/append, as the teacher's
	// variants implicitly do).
	Allocator htable.Allocator
}

func defaultEqual[K comparable](a, b K) bool { return a == b }

func (c Config[K, V]) toParams() htable.Params[K, V] {
	p := htable.Params[K, V]{
		Hasher:           c.Hasher,
		Equal:            c.Equal,
		Policy:           c.GrowthPolicy,
		NeighborhoodSize: c.NeighborhoodSize,
		MaxLoadFactor:    c.MaxLoadFactor,
		MaxProbes:        c.MaxProbes,
		StoreHash:        c.StoreHash,
		Alloc:            c.Allocator,
		InitialBuckets:   c.Size,
	}
	if p.Hasher == nil {
		p.Hasher = shared.GetHasher[K]()
	}
	if p.Equal == nil {
		p.Equal = defaultEqual[K]
	}
	if p.Policy == nil {
		p.Policy = policy.PowerOfTwo{}
	}
	if p.NeighborhoodSize == 0 {
		p.NeighborhoodSize = shared.DefaultNeighborhoodSize
	}
	if p.MaxLoadFactor == 0 {
		p.MaxLoadFactor = shared.DefaultMaxLoadFactor
	}
	if p.InitialBuckets == 0 {
		p.InitialBuckets = shared.DefaultSize
	}
	return p
}
