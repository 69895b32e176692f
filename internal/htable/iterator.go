package htable

// Iterator is a single forward cursor: a position in the bucket array
// (bIdx) and, once that is exhausted, a position in the overflow list
// (ovf). This is the pull-cursor restructuring of the walk order every
// teacher variant already performs inside Each (bucket array first, then
// — for this engine only — the overflow list), per spec §4.4.
//
// Iterators borrow from the engine; any insert that displaces entries or
// triggers a rehash, and any Clear, invalidates every live iterator,
// exactly as spec §4.4 requires.
type Iterator[K comparable, V any] struct {
	e    *Engine[K, V]
	bIdx int
	ovf  *ovfNode[K, V]
}

// Valid reports whether the iterator currently points at an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.bIdx < len(it.e.buckets) || it.ovf != nil
}

// Key returns the key at the current position. Valid must be true.
func (it *Iterator[K, V]) Key() K {
	if it.bIdx < len(it.e.buckets) {
		return it.e.buckets[it.bIdx].key
	}
	return it.ovf.key
}

// Value returns the value at the current position. Valid must be true.
func (it *Iterator[K, V]) Value() V {
	if it.bIdx < len(it.e.buckets) {
		return it.e.buckets[it.bIdx].val
	}
	return it.ovf.val
}

// Next advances the cursor to the next occupied entry, switching from the
// bucket array into the overflow list once the array is exhausted.
func (it *Iterator[K, V]) Next() {
	if it.bIdx < len(it.e.buckets) {
		it.bIdx++
		for it.bIdx < len(it.e.buckets) && it.e.buckets[it.bIdx].isEmpty() {
			it.bIdx++
		}
		if it.bIdx < len(it.e.buckets) {
			return
		}
		it.ovf = it.e.overflow.head
		return
	}
	if it.ovf != nil {
		it.ovf = it.ovf.next
	}
}

// begin returns an iterator at the first occupied position.
func (e *Engine[K, V]) begin() Iterator[K, V] {
	it := Iterator[K, V]{e: e, bIdx: 0}
	for it.bIdx < len(e.buckets) && e.buckets[it.bIdx].isEmpty() {
		it.bIdx++
	}
	if it.bIdx >= len(e.buckets) {
		it.ovf = e.overflow.head
	}
	return it
}

// end returns the sentinel iterator (Valid() == false).
func (e *Engine[K, V]) end() Iterator[K, V] {
	return Iterator[K, V]{e: e, bIdx: len(e.buckets)}
}

// iteratorAt builds an iterator pointing directly at bucket index idx,
// used by Find so callers don't pay for a full scan from begin().
func (e *Engine[K, V]) iteratorAt(idx int) Iterator[K, V] {
	return Iterator[K, V]{e: e, bIdx: idx}
}

// iteratorAtOverflow builds an iterator pointing directly at an overflow
// node.
func (e *Engine[K, V]) iteratorAtOverflow(n *ovfNode[K, V]) Iterator[K, V] {
	return Iterator[K, V]{e: e, bIdx: len(e.buckets), ovf: n}
}
