// Package htable implements the hopscotch hashing engine: the bucket
// array with its per-bucket neighborhood bitmap, the displacement
// ("hopping") algorithm, the overflow fallback list, and the rehash
// policy. This is the hardest engineering in the repository — every
// exported method here corresponds to one operation of the spec's §4.3.
//
// It is a direct generalization of the teacher repository's
// hopscotch/map.go (itself: bucket.go + map.go), restructured to take a
// pluggable policy.Policy instead of a hardcoded power-of-two mask, and
// to fall back to a real overflow list instead of growing the
// neighborhood bitmap without bound.
package htable

import (
	"math"

	"github.com/nlowell/hopscotch/policy"
	"github.com/nlowell/hopscotch/shared"
)

// Engine is the hopscotch hash table core, shared by the map and set
// façades (the set façade instantiates V as struct{}).
type Engine[K comparable, V any] struct {
	buckets []slot[K, V]
	overflow overflow[K, V]

	hasher shared.HashFn[K]
	equal  func(a, b K) bool
	policy policy.Policy
	alloc  Allocator

	length           uint64
	bucketCount      uint64 // logical home-bucket count, policy.Index range
	neighborhoodSize uint64 // N
	maxProbes        uint64 // P
	maxLoadFactor    float64
	loadThreshold    uint64 // cached floor(bucketCount*maxLoadFactor)
	storeHash        bool
}

// Params bundles the construction-time configuration for an Engine. It
// mirrors the fields of the root package's Config that are relevant to
// the engine (the façade owns the rest, e.g. key selection).
type Params[K comparable, V any] struct {
	Hasher           shared.HashFn[K]
	Equal            func(a, b K) bool
	Policy           policy.Policy
	NeighborhoodSize uint64
	MaxLoadFactor    float64
	MaxProbes        uint64
	StoreHash        bool
	Alloc            Allocator
	InitialBuckets   uint64
}

// New constructs a ready-to-use Engine.
func New[K comparable, V any](p Params[K, V]) (*Engine[K, V], error) {
	if p.NeighborhoodSize == 0 || p.NeighborhoodSize > shared.MaxNeighborhoodSize {
		return nil, shared.ErrOutOfRange
	}
	if p.MaxLoadFactor <= 0.0 || p.MaxLoadFactor > 1.0 {
		return nil, shared.ErrOutOfRange
	}
	if p.Alloc == nil {
		p.Alloc = NopAllocator{}
	}
	if p.MaxProbes == 0 {
		p.MaxProbes = 10 * p.NeighborhoodSize
	}

	bucketCount := p.Policy.RoundUp(maxU64(p.InitialBuckets, shared.DefaultSize))
	if bucketCount > p.Policy.MaxBucketCount() {
		return nil, shared.ErrCapacityExceeded
	}

	buckets, err := newSlotSlice[K, V](p.Alloc, bucketCount+p.NeighborhoodSize-1)
	if err != nil {
		return nil, err
	}

	e := &Engine[K, V]{
		buckets:          buckets,
		hasher:           p.Hasher,
		equal:            p.Equal,
		policy:           p.Policy,
		alloc:            p.Alloc,
		bucketCount:      bucketCount,
		neighborhoodSize: p.NeighborhoodSize,
		maxProbes:        p.MaxProbes,
		maxLoadFactor:    p.MaxLoadFactor,
		storeHash:        p.StoreHash,
	}
	e.loadThreshold = uint64(float64(bucketCount) * p.MaxLoadFactor)

	return e, nil
}

func newSlotSlice[K comparable, V any](alloc Allocator, n uint64) ([]slot[K, V], error) {
	if err := alloc.Reserve(n); err != nil {
		return nil, shared.ErrAllocationFailed
	}
	return make([]slot[K, V], n), nil
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// Size returns the number of stored elements.
func (e *Engine[K, V]) Size() uint64 { return e.length }

// BucketCount returns the logical home-bucket count.
func (e *Engine[K, V]) BucketCount() uint64 { return e.bucketCount }

// NeighborhoodSize returns N.
func (e *Engine[K, V]) NeighborhoodSize() uint64 { return e.neighborhoodSize }

// LoadFactor returns size()/bucketCount().
func (e *Engine[K, V]) LoadFactor() float64 {
	return float64(e.length) / float64(e.bucketCount)
}

// MaxLoadFactor returns the configured threshold.
func (e *Engine[K, V]) MaxLoadFactor() float64 { return e.maxLoadFactor }

// OverflowSize returns the number of entries currently in the overflow
// list, exposed for tests and diagnostics (spec §8 scenario 5).
func (e *Engine[K, V]) OverflowSize() uint64 { return e.overflow.len() }

// SetMaxProbes changes the forward-probing cap P (spec
// max_probes_for_empty_bucket).
func (e *Engine[K, V]) SetMaxProbes(p uint64) error {
	if p < 1 {
		return shared.ErrOutOfRange
	}
	e.maxProbes = p
	return nil
}

//go:inline
func (e *Engine[K, V]) hashEqualAt(idx uint64, key K, hash uint64) bool {
	if e.storeHash && e.buckets[idx].hash != hash {
		return false
	}
	return e.equal(e.buckets[idx].key, key)
}

// locate finds key's current position: either a bucket index (found=true,
// ovf=nil) or an overflow node (found=true, ovf!=nil), or nothing.
func (e *Engine[K, V]) locate(key K) (home uint64, hash uint64, idx uint64, ovf *ovfNode[K, V], found bool) {
	hash = e.hasher(key)
	home = e.policy.Index(hash, e.bucketCount)

	nb := e.buckets[home].neighborhood()
	for i := uint64(0); nb != 0; i++ {
		if nb&1 == 1 {
			cand := home + i
			if e.hashEqualAt(cand, key, hash) {
				return home, hash, cand, nil, true
			}
		}
		nb >>= 1
	}

	if !e.buckets[home].hasOverflow() {
		return home, hash, 0, nil, false
	}
	if n := e.overflow.find(key, e.equal); n != nil {
		return home, hash, 0, n, true
	}
	return home, hash, 0, nil, false
}

// Find returns an iterator positioned at key, and whether it was found.
func (e *Engine[K, V]) Find(key K) (Iterator[K, V], bool) {
	_, _, idx, ovf, found := e.locate(key)
	if !found {
		return e.end(), false
	}
	if ovf != nil {
		return e.iteratorAtOverflow(ovf), true
	}
	return e.iteratorAt(int(idx)), true
}

// Get is a value-only convenience wrapper over Find.
func (e *Engine[K, V]) Get(key K) (V, bool) {
	it, ok := e.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

// Contains reports whether key is present.
func (e *Engine[K, V]) Contains(key K) bool {
	_, _, _, _, found := e.locate(key)
	return found
}

// Put inserts key/val, overwriting the value if key is already present.
// Returns the iterator at the (possibly pre-existing) entry and whether a
// new element was inserted.
func (e *Engine[K, V]) Put(key K, val V) (Iterator[K, V], bool, error) {
	home, hash, idx, ovf, found := e.locate(key)
	if found {
		if ovf != nil {
			ovf.val = val
			return e.iteratorAtOverflow(ovf), false, nil
		}
		e.buckets[idx].val = val
		return e.iteratorAt(int(idx)), false, nil
	}
	it, err := e.insertAssumingAbsent(home, hash, key, val)
	return it, err == nil, err
}

// TryEmplace inserts key/val only if key is absent; a pre-existing entry
// is left untouched.
func (e *Engine[K, V]) TryEmplace(key K, val V) (Iterator[K, V], bool, error) {
	home, hash, idx, ovf, found := e.locate(key)
	if found {
		if ovf != nil {
			return e.iteratorAtOverflow(ovf), false, nil
		}
		return e.iteratorAt(int(idx)), false, nil
	}
	it, err := e.insertAssumingAbsent(home, hash, key, val)
	return it, err == nil, err
}

// insertAssumingAbsent implements spec §4.3.2 steps 2-7. The caller is
// responsible for the duplicate check (step 1) — or, during rehash,
// guarantees uniqueness by construction.
func (e *Engine[K, V]) insertAssumingAbsent(home, hash uint64, key K, val V) (Iterator[K, V], error) {
	for {
		if e.length-e.overflow.len()+1 > e.loadThreshold {
			if err := e.growRehash(); err != nil {
				return e.end(), err
			}
			home = e.policy.Index(hash, e.bucketCount)
		}

		if empty, ok := e.probeEmpty(home); ok {
			closed := e.bringCloser(home, &empty)
			if closed {
				e.placeAt(home, empty, hash, key, val)
				return e.iteratorAt(int(empty)), nil
			}
		}

		if e.willRehashHelp(home) {
			if err := e.growRehash(); err != nil {
				return e.end(), err
			}
			home = e.policy.Index(hash, e.bucketCount)
			continue
		}

		return e.pushOverflow(home, key, val), nil
	}
}

// probeEmpty linearly scans forward from home for the first empty slot,
// bounded by maxProbes and the physical array length L (spec §4.3.2 step
// 3-4: "Linear probing may not cross the end of the bucket array").
func (e *Engine[K, V]) probeEmpty(home uint64) (uint64, bool) {
	limit := home + e.maxProbes
	l := uint64(len(e.buckets))
	if limit > l {
		limit = l
	}
	for i := home; i < limit; i++ {
		if e.buckets[i].isEmpty() {
			return i, true
		}
	}
	return 0, false
}

// bringCloser repeatedly hops an entry from within the empty slot's
// trailing window back toward home, until the empty slot lands within N
// of home or no hoppable entry remains. Ported from the teacher's
// moveCloser (hopscotch/map.go), generalized to the spec's explicit
// per-home bitmap bookkeeping.
func (e *Engine[K, V]) bringCloser(home uint64, emptyIdx *uint64) bool {
	for *emptyIdx-home >= e.neighborhoodSize {
		w := *emptyIdx - e.neighborhoodSize + 1
		moved := false

		for c := w; c < *emptyIdx; c++ {
			nb := e.buckets[c].neighborhood()
			if nb == 0 {
				continue
			}
			for i := uint64(0); c+i < *emptyIdx; i++ {
				if nb&(uint64(1)<<i) == 0 {
					continue
				}
				s := c + i
				e.buckets[s].moveInto(&e.buckets[*emptyIdx])
				e.buckets[c].setNeighborhoodBit(s-c, false)
				e.buckets[c].setNeighborhoodBit(*emptyIdx-c, true)
				*emptyIdx = s
				moved = true
				break
			}
			if moved {
				break
			}
		}

		if !moved {
			return false
		}
	}
	return true
}

func (e *Engine[K, V]) placeAt(home, idx, hash uint64, key K, val V) {
	e.buckets[idx].emplace(key, val, hash)
	e.buckets[home].setNeighborhoodBit(idx-home, true)
	e.length++
}

func (e *Engine[K, V]) pushOverflow(home uint64, key K, val V) Iterator[K, V] {
	n := e.overflow.pushBack(key, val, home)
	e.buckets[home].setOverflow(true)
	e.length++
	return e.iteratorAtOverflow(n)
}

// willRehashHelp implements spec §4.3.5: a rehash only helps if at least
// one of home's current neighbors maps to a different index under the
// next bucket count.
func (e *Engine[K, V]) willRehashHelp(home uint64) bool {
	nextCount := e.policy.NextBucketCount(e.bucketCount)
	nb := e.buckets[home].neighborhood()
	for i := uint64(0); nb != 0; i++ {
		if nb&1 == 1 {
			idx := home + i
			var h uint64
			if e.storeHash {
				h = e.buckets[idx].hash
			} else {
				h = e.hasher(e.buckets[idx].key)
			}
			if e.policy.Index(h, e.bucketCount) != e.policy.Index(h, nextCount) {
				return true
			}
		}
		nb >>= 1
	}
	return false
}

func (e *Engine[K, V]) growRehash() error {
	return e.Rehash(e.policy.NextBucketCount(e.bucketCount))
}

// Rehash grows (or, for an explicit caller request, resizes) the table to
// at least `requested` buckets, per spec §4.3.4. It builds the
// replacement table fully before swapping it in, so a failure (today:
// only ErrCapacityExceeded or an Allocator refusal) leaves the receiver
// untouched — strong exception safety.
func (e *Engine[K, V]) Rehash(requested uint64) error {
	minNeeded := uint64(math.Ceil(float64(e.length) / e.maxLoadFactor))
	newCount := maxU64(requested, minNeeded)
	newCount = e.policy.RoundUp(newCount)
	if newCount <= e.bucketCount {
		newCount = e.policy.NextBucketCount(e.bucketCount)
	}
	if newCount > e.policy.MaxBucketCount() {
		return shared.ErrCapacityExceeded
	}

	next := &Engine[K, V]{
		hasher:           e.hasher,
		equal:            e.equal,
		policy:           e.policy,
		alloc:            e.alloc,
		bucketCount:      newCount,
		neighborhoodSize: e.neighborhoodSize,
		maxProbes:        e.maxProbes,
		maxLoadFactor:    e.maxLoadFactor,
		storeHash:        e.storeHash,
	}
	next.loadThreshold = uint64(float64(newCount) * e.maxLoadFactor)

	buckets, err := newSlotSlice[K, V](e.alloc, newCount+e.neighborhoodSize-1)
	if err != nil {
		return err
	}
	next.buckets = buckets

	// Phase 1: move every bucket-array entry via an insert that bypasses
	// the duplicate check — uniqueness holds by construction.
	for i := range e.buckets {
		if e.buckets[i].isEmpty() {
			continue
		}
		var hash uint64
		if e.storeHash {
			hash = e.buckets[i].hash
		} else {
			hash = e.hasher(e.buckets[i].key)
		}
		home := next.policy.Index(hash, next.bucketCount)
		if _, ierr := next.insertAssumingAbsent(home, hash, e.buckets[i].key, e.buckets[i].val); ierr != nil {
			return ierr
		}
	}

	// Phase 2: splice e's overflow nodes onto the tail of whatever phase 1
	// already produced, instead of overwriting next.overflow — phase 1
	// can itself have pushed entries onto next.overflow via pushOverflow
	// (e.g. a key whose home index is unchanged by the new bucket count),
	// and overwriting would silently drop those while next.length still
	// counted them. Patch each carried-over node's home and the new
	// bucket's overflow flag, then append without reinserting (reinsertion
	// could itself overflow the new table and cascade).
	old := e.overflow
	for n := old.head; n != nil; n = n.next {
		home := next.policy.Index(next.hasher(n.key), next.bucketCount)
		n.home = home
		next.buckets[home].setOverflow(true)
	}
	if old.head != nil {
		if next.overflow.tail == nil {
			next.overflow.head = old.head
		} else {
			next.overflow.tail.next = old.head
			old.head.prev = next.overflow.tail
		}
		next.overflow.tail = old.tail
		next.overflow.size += old.size
	}
	next.length += old.len()

	e.alloc.Release(uint64(len(e.buckets)))
	*e = *next
	return nil
}

// Reserve grows the table so it can hold at least n elements without a
// further rehash, if it does not already.
func (e *Engine[K, V]) Reserve(n uint64) error {
	needed := uint64(math.Ceil(float64(n) / e.maxLoadFactor))
	needed = e.policy.RoundUp(needed)
	if needed <= e.bucketCount {
		return nil
	}
	return e.Rehash(needed)
}

// Erase removes key, returning whether it was present.
func (e *Engine[K, V]) Erase(key K) bool {
	home, _, idx, ovf, found := e.locate(key)
	if !found {
		return false
	}
	if ovf != nil {
		e.overflow.remove(ovf)
		e.length--
		if !e.overflow.hasHome(home) {
			e.buckets[home].setOverflow(false)
		}
		return true
	}
	e.buckets[home].setNeighborhoodBit(idx-home, false)
	e.buckets[idx].release()
	e.length--
	return true
}

// Clear empties the table, invalidating every iterator.
func (e *Engine[K, V]) Clear() {
	for i := range e.buckets {
		e.buckets[i].hopInfo = 0
	}
	e.overflow.clear()
	e.length = 0
}

// Each calls fn on every stored entry in no particular order; iteration
// stops early if fn returns true.
func (e *Engine[K, V]) Each(fn func(key K, val V) bool) {
	for i := range e.buckets {
		if !e.buckets[i].isEmpty() {
			if fn(e.buckets[i].key, e.buckets[i].val) {
				return
			}
		}
	}
	e.overflow.each(fn)
}

// Begin returns an iterator at the first stored entry (or the sentinel,
// if empty).
func (e *Engine[K, V]) Begin() Iterator[K, V] { return e.begin() }

// End returns the sentinel iterator.
func (e *Engine[K, V]) End() Iterator[K, V] { return e.end() }

// Copy returns a deep copy of the engine.
func (e *Engine[K, V]) Copy() *Engine[K, V] {
	cp := &Engine[K, V]{
		hasher:           e.hasher,
		equal:            e.equal,
		policy:           e.policy,
		alloc:            e.alloc,
		length:           e.length,
		bucketCount:      e.bucketCount,
		neighborhoodSize: e.neighborhoodSize,
		maxProbes:        e.maxProbes,
		maxLoadFactor:    e.maxLoadFactor,
		loadThreshold:    e.loadThreshold,
		storeHash:        e.storeHash,
	}
	cp.buckets = make([]slot[K, V], len(e.buckets))
	copy(cp.buckets, e.buckets)

	e.overflow.each(func(k K, v V) bool {
		home := cp.policy.Index(cp.hasher(k), cp.bucketCount)
		cp.overflow.pushBack(k, v, home)
		return false
	})

	return cp
}

// FindAs supports heterogeneous lookup (spec §4.5): alt is an alternate
// representation of a key (e.g. a raw pointer when K is a smart-pointer
// type), hashed and compared against stored keys without constructing a
// K. Go methods cannot add type parameters of their own, so this is a
// package-level generic function rather than an Engine method.
func FindAs[K comparable, V any, A any](e *Engine[K, V], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) (V, bool) {
	hash := hashAlt(alt)
	home := e.policy.Index(hash, e.bucketCount)

	nb := e.buckets[home].neighborhood()
	for i := uint64(0); nb != 0; i++ {
		if nb&1 == 1 {
			idx := home + i
			if equalAlt(e.buckets[idx].key, alt) {
				return e.buckets[idx].val, true
			}
		}
		nb >>= 1
	}

	if e.buckets[home].hasOverflow() {
		for n := e.overflow.head; n != nil; n = n.next {
			if equalAlt(n.key, alt) {
				return n.val, true
			}
		}
	}

	var zero V
	return zero, false
}

// EraseAs is the heterogeneous counterpart of Erase.
func EraseAs[K comparable, V any, A any](e *Engine[K, V], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) bool {
	hash := hashAlt(alt)
	home := e.policy.Index(hash, e.bucketCount)

	nb := e.buckets[home].neighborhood()
	for i := uint64(0); nb != 0; i++ {
		if nb&1 == 1 {
			idx := home + i
			if equalAlt(e.buckets[idx].key, alt) {
				e.buckets[home].setNeighborhoodBit(idx-home, false)
				e.buckets[idx].release()
				e.length--
				return true
			}
		}
		nb >>= 1
	}

	if e.buckets[home].hasOverflow() {
		for n := e.overflow.head; n != nil; n = n.next {
			if equalAlt(n.key, alt) {
				e.overflow.remove(n)
				e.length--
				if !e.overflow.hasHome(home) {
					e.buckets[home].setOverflow(false)
				}
				return true
			}
		}
	}
	return false
}
