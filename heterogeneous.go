package hopscotch

import "github.com/nlowell/hopscotch/internal/htable"

// FindAs looks a Map up by an alternate key representation — e.g. a raw
// pointer when K is a smart-pointer-like wrapper type — without
// constructing a K, per spec §4.5's heterogeneous lookup requirement
// (scenario 6). hashAlt and equalAlt must agree with the Map's own
// Config.Hasher/Config.Equal for every K actually stored: hashAlt(a) must
// equal the hash a K equal (under equalAlt) to a would produce, and
// equalAlt must be consistent with the Map's equality.
//
// This is a package-level function rather than a Map method because Go
// methods cannot introduce their own type parameters.
func FindAs[K comparable, V any, A any](m *Map[K, V], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) (V, bool) {
	return htable.FindAs(m.e, alt, hashAlt, equalAlt)
}

// ContainsAs is the boolean-only form of FindAs.
func ContainsAs[K comparable, V any, A any](m *Map[K, V], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) bool {
	_, ok := htable.FindAs(m.e, alt, hashAlt, equalAlt)
	return ok
}

// EraseAs removes the entry matching alt, without constructing a K.
func EraseAs[K comparable, V any, A any](m *Map[K, V], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) bool {
	return htable.EraseAs(m.e, alt, hashAlt, equalAlt)
}

// SetContainsAs/SetEraseAs are the Set-form counterparts.

// SetContainsAs reports whether a Set contains a key matching alt.
func SetContainsAs[K comparable, A any](s *Set[K], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) bool {
	_, ok := htable.FindAs(s.e, alt, hashAlt, equalAlt)
	return ok
}

// SetEraseAs removes the key matching alt from a Set.
func SetEraseAs[K comparable, A any](s *Set[K], alt A, hashAlt func(A) uint64, equalAlt func(K, A) bool) bool {
	return htable.EraseAs(s.e, alt, hashAlt, equalAlt)
}
