package hopscotch

import (
	"github.com/nlowell/hopscotch/internal/htable"
)

// Set is the value-less form of the hopscotch table: a collection of
// unique keys. It shares the Map's engine, instantiated with V =
// struct{}, the same zero-size-value technique the standard library's
// map[K]struct{} idiom uses for sets.
type Set[K comparable] struct {
	e *htable.Engine[K, struct{}]
}

// NewSet creates a ready-to-use Set with default settings.
func NewSet[K comparable]() *Set[K] {
	return MustNewSet[K](Config[K, struct{}]{})
}

// NewSetConfig constructs a Set from cfg.
func NewSetConfig[K comparable](cfg Config[K, struct{}]) (*Set[K], error) {
	e, err := htable.New(cfg.toParams())
	if err != nil {
		return nil, err
	}
	return &Set[K]{e: e}, nil
}

// MustNewSet is NewSetConfig but panics on error.
func MustNewSet[K comparable](cfg Config[K, struct{}]) *Set[K] {
	s, err := NewSetConfig[K](cfg)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool { return s.e.Contains(key) }

// Count returns 1 if key is present, 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.e.Contains(key) {
		return 1
	}
	return 0
}

// Add inserts key. Returns true if it is new.
func (s *Set[K]) Add(key K) bool {
	_, inserted, err := s.e.TryEmplace(key, struct{}{})
	if err != nil {
		panic(err.Error())
	}
	return inserted
}

// Remove removes key. Returns true if it was present.
func (s *Set[K]) Remove(key K) bool { return s.e.Erase(key) }

// Clear removes every key.
func (s *Set[K]) Clear() { s.e.Clear() }

// Size returns the number of keys.
func (s *Set[K]) Size() int { return int(s.e.Size()) }

// Empty reports whether the set has no keys.
func (s *Set[K]) Empty() bool { return s.e.Size() == 0 }

// BucketCount returns the number of home buckets.
func (s *Set[K]) BucketCount() int { return int(s.e.BucketCount()) }

// LoadFactor returns Size()/BucketCount().
func (s *Set[K]) LoadFactor() float64 { return s.e.LoadFactor() }

// MaxLoadFactor returns the configured rehash threshold.
func (s *Set[K]) MaxLoadFactor() float64 { return s.e.MaxLoadFactor() }

// OverflowSize reports how many keys currently live in the overflow list.
func (s *Set[K]) OverflowSize() int { return int(s.e.OverflowSize()) }

// Reserve grows the set so it can hold at least n keys without a further
// rehash.
func (s *Set[K]) Reserve(n uint64) error { return s.e.Reserve(n) }

// Rehash resizes the set to at least n buckets.
func (s *Set[K]) Rehash(n uint64) error { return s.e.Rehash(n) }

// Each calls fn on every key in no particular order. Iteration stops
// early if fn returns true.
func (s *Set[K]) Each(fn func(key K) bool) {
	s.e.Each(func(k K, _ struct{}) bool { return fn(k) })
}

// Copy returns a deep copy of s.
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{e: s.e.Copy()}
}

// SetEqual reports whether a and b contain the same set of keys.
func SetEqual[K comparable](a, b *Set[K]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.e.Each(func(k K, _ struct{}) bool {
		if !b.e.Contains(k) {
			equal = false
			return true
		}
		return false
	})
	return equal
}
