package htable

// Allocator mediates the engine's bucket-array allocations: the initial
// bucket array and every rehash's replacement array. Overflow-list nodes
// and the arrays built by Copy are allocated without consulting it.
// None of the teacher's variants plug in a custom
// allocator (Go's GC makes that unusual), so this is deliberately a thin
// accounting hook rather than a real arena/pool API: Reserve is called
// with the element count about to be allocated and may veto it, and
// Release is called with the element count being freed. See DESIGN.md for
// why a full custom-allocator API was not built.
type Allocator interface {
	// Reserve is called before the engine allocates a bucket array of n
	// slots (a fresh or grown array). Returning an error aborts the
	// allocation and is surfaced to the caller as
	// shared.ErrAllocationFailed.
	Reserve(n uint64) error

	// Release is called with the slot count of the previous bucket array
	// after a successful rehash. It is not called on erase or Clear.
	Release(n uint64)
}

// NopAllocator is the default Allocator: every reservation succeeds and
// releases are ignored, matching the teacher's implicit reliance on the Go
// runtime allocator via plain make()/append().
type NopAllocator struct{}

// Reserve implements Allocator.
func (NopAllocator) Reserve(uint64) error { return nil }

// Release implements Allocator.
func (NopAllocator) Release(uint64) {}
