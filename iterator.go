package hopscotch

import "github.com/nlowell/hopscotch/internal/htable"

// Iterator is a forward cursor over a Map's entries: it walks the bucket
// array, then continues into the overflow list, per spec §4.4. It is
// invalidated by any operation on the owning Map that may displace
// entries (an insert that hops or rehashes) or by Clear.
type Iterator[K comparable, V any] struct {
	it htable.Iterator[K, V]
}

// Valid reports whether the cursor currently points at an entry.
func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K { return it.it.Key() }

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V { return it.it.Value() }

// Next advances the cursor to the next entry.
func (it *Iterator[K, V]) Next() { it.it.Next() }
