package policy

import (
	"github.com/nlowell/hopscotch/shared"
)

// PowerOfTwo is the index policy ported from the teacher's
// `capMinus1 = n - 1; idx = hash & capMinus1` trick (hopscotch/map.go,
// robin/map.go, unordered/map.go all inline this same masking). Bucket
// counts are always a power of two so that Index is a single AND.
//
// Ratio generalizes the teacher's hardcoded "grow() { 2 * (capMinus1+1) }"
// to any power-of-two-over-power-of-two growth factor >= 1.1, as required
// by the spec's growth_ratio parameter.
type PowerOfTwo struct {
	// RatioNum/RatioDen must both be powers of two, RatioNum > RatioDen,
	// and RatioNum/RatioDen >= 1.1. Zero values default to 2/1.
	RatioNum uint64
	RatioDen uint64
}

var _ Policy = PowerOfTwo{}

func (p PowerOfTwo) ratio() (num, den uint64) {
	num, den = p.RatioNum, p.RatioDen
	if num == 0 {
		num = 2
	}
	if den == 0 {
		den = 1
	}
	return num, den
}

// Index implements Policy.
func (p PowerOfTwo) Index(hash uint64, bucketCount uint64) uint64 {
	return hash & (bucketCount - 1)
}

// NextBucketCount implements Policy.
func (p PowerOfTwo) NextBucketCount(current uint64) uint64 {
	num, den := p.ratio()
	next := shared.NextPowerOf2((current / den) * num)
	if next <= current {
		next = current << 1
	}
	return next
}

// RoundUp implements Policy.
func (p PowerOfTwo) RoundUp(n uint64) uint64 {
	if n == 0 {
		n = 1
	}
	return shared.NextPowerOf2(n)
}

// MaxBucketCount implements Policy. The largest power of two representable
// by a uint64 bucket count.
func (p PowerOfTwo) MaxBucketCount() uint64 {
	return uint64(1) << 63
}
