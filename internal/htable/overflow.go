package htable

// ovfNode is one link of the overflow list. Adapted from the teacher's
// unordered/map.go singly linked chaining node (`node[K, V]`), extended
// with a prev pointer so erase-by-position is O(1) instead of requiring a
// scan to find the predecessor — the spec requires the overflow list
// support removal from an arbitrary iterator position (§4.3.3).
type ovfNode[K comparable, V any] struct {
	prev, next *ovfNode[K, V]
	key        K
	val        V
	home       uint64 // the home bucket this entry overflowed from
}

// overflow is the doubly linked, insertion-ordered fallback list (§3: "a
// doubly linked ordered sequence of entries").
type overflow[K comparable, V any] struct {
	head, tail *ovfNode[K, V]
	size       uint64
}

func (o *overflow[K, V]) len() uint64 {
	return o.size
}

// pushBack appends a new entry and returns its node, mirroring the
// teacher's pushFront helper (unordered/map.go) but at the tail, since the
// spec requires overflow insertion order to be preserved (§4.3.4
// rationale).
func (o *overflow[K, V]) pushBack(key K, val V, home uint64) *ovfNode[K, V] {
	n := &ovfNode[K, V]{key: key, val: val, home: home}
	if o.tail == nil {
		o.head, o.tail = n, n
	} else {
		n.prev = o.tail
		o.tail.next = n
		o.tail = n
	}
	o.size++
	return n
}

// remove unlinks n from the list.
func (o *overflow[K, V]) remove(n *ovfNode[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		o.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		o.tail = n.prev
	}
	n.prev, n.next = nil, nil
	o.size--
}

// find scans the overflow list for key, returning the matching node or
// nil. Linear, by design: the spec expects the overflow list to be rare
// (§4.3.1 rationale).
func (o *overflow[K, V]) find(key K, equal func(K, K) bool) *ovfNode[K, V] {
	for n := o.head; n != nil; n = n.next {
		if equal(n.key, key) {
			return n
		}
	}
	return nil
}

// hasHome reports whether any remaining node has the given home bucket,
// used to decide whether a bucket's overflow flag can be cleared after an
// erase (§4.3.3, the documented O(|O|) linear-scan contract — see §9 Open
// Question / DESIGN.md).
func (o *overflow[K, V]) hasHome(home uint64) bool {
	for n := o.head; n != nil; n = n.next {
		if n.home == home {
			return true
		}
	}
	return false
}

func (o *overflow[K, V]) clear() {
	o.head, o.tail, o.size = nil, nil, 0
}

func (o *overflow[K, V]) each(fn func(key K, val V) bool) bool {
	for n := o.head; n != nil; n = n.next {
		if fn(n.key, n.val) {
			return true
		}
	}
	return false
}
