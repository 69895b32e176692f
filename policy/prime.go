package policy

import "sort"

// primes is a fixed, ascending sequence of bucket counts for the Prime
// policy, each roughly double its predecessor. This is the standard
// technique used by modulus-indexed hash tables (e.g. the growth table in
// many STL unordered_map implementations); it is not grounded in a
// specific corpus file since none of the retrieved examples use modulus
// indexing (they are all power-of-two masked), so the table below is
// built from first principles rather than ported from a reference — see
// DESIGN.md.
var primes = []uint64{
	5, 11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853, 25717, 51437,
	102877, 205759, 411527, 823117, 1646237, 3292489, 6584983, 13169977,
	26339969, 52679969, 105359939, 210719881, 421439783, 842879579,
	1685759167, 3371518343,
}

// Prime is the index policy `index = hash mod p`, where p is drawn from a
// fixed ascending prime sequence. It spreads hash collisions more evenly
// than a power-of-two mask at the cost of a division per lookup, the
// classic power-of-two-vs-prime tradeoff the spec calls out in §4.2.
type Prime struct{}

var _ Policy = Prime{}

// Index implements Policy.
func (Prime) Index(hash uint64, bucketCount uint64) uint64 {
	return hash % bucketCount
}

// NextBucketCount implements Policy.
func (Prime) NextBucketCount(current uint64) uint64 {
	i := sort.Search(len(primes), func(i int) bool { return primes[i] > current })
	if i >= len(primes) {
		// beyond the table: keep roughly doubling, staying odd so it is
		// never a multiple of two (it is not checked for primality).
		next := current * 2
		if next%2 == 0 {
			next++
		}
		return next
	}
	return primes[i]
}

// RoundUp implements Policy.
func (Prime) RoundUp(n uint64) uint64 {
	i := sort.Search(len(primes), func(i int) bool { return primes[i] >= n })
	if i >= len(primes) {
		if n%2 == 0 {
			n++
		}
		return n
	}
	return primes[i]
}

// MaxBucketCount implements Policy.
func (Prime) MaxBucketCount() uint64 {
	return primes[len(primes)-1] * (1 << 20)
}
