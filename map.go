package hopscotch

import (
	"github.com/nlowell/hopscotch/internal/htable"
)

// Map is a hopscotch hash map: unique keys, each bound to one value.
type Map[K comparable, V any] struct {
	e *htable.Engine[K, V]
}

// New creates a ready-to-use Map with default settings, exactly as the
// teacher's `hopscotch.New[K, V]()` does for its variant.
func New[K comparable, V any]() *Map[K, V] {
	return MustNewMap[K, V](Config[K, V]{})
}

// NewMap constructs a Map from cfg.
func NewMap[K comparable, V any](cfg Config[K, V]) (*Map[K, V], error) {
	e, err := htable.New(cfg.toParams())
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{e: e}, nil
}

// MustNewMap is NewMap but panics on error, mirroring the teacher's
// MustNewHashMap.
func MustNewMap[K comparable, V any](cfg Config[K, V]) *Map[K, V] {
	m, err := NewMap[K, V](cfg)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Get returns the value stored for key, or false if absent.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.e.Get(key) }

// At returns the value stored for key, or ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.e.Get(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.e.Contains(key) }

// Count returns 1 if key is present, 0 otherwise (spec's set-of-unique-keys
// count).
func (m *Map[K, V]) Count(key K) int {
	if m.e.Contains(key) {
		return 1
	}
	return 0
}

// Put inserts key/val, overwriting any existing value for key. Returns
// true if key is a new entry.
func (m *Map[K, V]) Put(key K, val V) bool {
	_, inserted, err := m.e.Put(key, val)
	if err != nil {
		panic(err.Error())
	}
	return inserted
}

// Emplace is an alias of Put kept for parity with the spec's external
// interface table; Go has no variadic in-place constructor arguments to
// forward, so "emplace" and "insert" coincide here.
func (m *Map[K, V]) Emplace(key K, val V) bool { return m.Put(key, val) }

// TryEmplace inserts key/val only if key is absent, leaving any existing
// value untouched. Returns true if a new entry was inserted.
func (m *Map[K, V]) TryEmplace(key K, val V) bool {
	_, inserted, err := m.e.TryEmplace(key, val)
	if err != nil {
		panic(err.Error())
	}
	return inserted
}

// InsertOrAssign inserts key/val, or assigns val to the existing entry.
// Returns true if key is a new entry (identical semantics to Put; kept
// as a distinct name for the spec's external-interface parity).
func (m *Map[K, V]) InsertOrAssign(key K, val V) bool { return m.Put(key, val) }

// GetOrInsert returns the value for key, inserting the zero value first
// if key is absent. This is the Go equivalent of the spec's
// `operator-at(key)` (map::operator[]).
func (m *Map[K, V]) GetOrInsert(key K) V {
	var zero V
	_, _, err := m.e.TryEmplace(key, zero)
	if err != nil {
		panic(err.Error())
	}
	v, _ := m.e.Get(key)
	return v
}

// Remove removes key. Returns true if it was present.
func (m *Map[K, V]) Remove(key K) bool { return m.e.Erase(key) }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.e.Clear() }

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return int(m.e.Size()) }

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool { return m.e.Size() == 0 }

// BucketCount returns the number of home buckets.
func (m *Map[K, V]) BucketCount() int { return int(m.e.BucketCount()) }

// LoadFactor returns Size()/BucketCount().
func (m *Map[K, V]) LoadFactor() float64 { return m.e.LoadFactor() }

// MaxLoadFactor returns the configured rehash threshold.
func (m *Map[K, V]) MaxLoadFactor() float64 { return m.e.MaxLoadFactor() }

// OverflowSize reports how many entries currently live in the overflow
// list rather than a home bucket's neighborhood.
func (m *Map[K, V]) OverflowSize() int { return int(m.e.OverflowSize()) }

// MaxProbesForEmptyBucket changes the forward probe cap P. Returns
// ErrOutOfRange if p < 1.
func (m *Map[K, V]) MaxProbesForEmptyBucket(p uint64) error {
	return m.e.SetMaxProbes(p)
}

// Reserve grows the map so it can hold at least n elements without a
// further rehash.
func (m *Map[K, V]) Reserve(n uint64) error { return m.e.Reserve(n) }

// Rehash resizes the map to at least n buckets.
func (m *Map[K, V]) Rehash(n uint64) error { return m.e.Rehash(n) }

// Each calls fn on every key/value pair in no particular order. Iteration
// stops early if fn returns true.
func (m *Map[K, V]) Each(fn func(key K, val V) bool) { m.e.Each(fn) }

// Iterator returns a cursor over every stored entry, positioned at the
// first one.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := m.e.Begin()
	return &Iterator[K, V]{it: it}
}

// Find returns a cursor positioned at key, and whether it was found.
func (m *Map[K, V]) Find(key K) (*Iterator[K, V], bool) {
	it, ok := m.e.Find(key)
	return &Iterator[K, V]{it: it}, ok
}

// Copy returns a deep copy of m.
func (m *Map[K, V]) Copy() *Map[K, V] {
	return &Map[K, V]{e: m.e.Copy()}
}

// MapEqual reports whether a and b contain the same set of keys, each
// bound to the same value, regardless of insertion order (spec §8
// order-independence-of-equality property). A package-level function
// rather than a method, since comparing V with `==` requires V
// comparable — a constraint Map itself does not impose, to allow
// non-comparable value types when equality is never needed.
func MapEqual[K comparable, V comparable](a, b *Map[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.e.Each(func(k K, v V) bool {
		ov, ok := b.e.Get(k)
		if !ok || v != ov {
			equal = false
			return true
		}
		return false
	})
	return equal
}
