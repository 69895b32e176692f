package htable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotOccupancy(t *testing.T) {
	var s slot[string, int]
	assert.True(t, s.isEmpty())

	s.emplace("a", 1, 42)
	assert.False(t, s.isEmpty())
	assert.Equal(t, "a", s.key)
	assert.Equal(t, 1, s.val)
	assert.Equal(t, uint64(42), s.hash)

	s.release()
	assert.True(t, s.isEmpty())
	assert.Equal(t, "", s.key)
	assert.Equal(t, 0, s.val)
	assert.Equal(t, uint64(0), s.hash)
}

func TestSlotNeighborhoodBits(t *testing.T) {
	var s slot[string, int]
	s.emplace("home", 0, 1)

	assert.False(t, s.neighborhoodBit(0))
	s.setNeighborhoodBit(0, true)
	s.setNeighborhoodBit(3, true)
	assert.True(t, s.neighborhoodBit(0))
	assert.True(t, s.neighborhoodBit(3))
	assert.False(t, s.neighborhoodBit(1))

	assert.Equal(t, uint64(1<<0|1<<3), s.neighborhood())

	s.setNeighborhoodBit(0, false)
	assert.False(t, s.neighborhoodBit(0))
	assert.True(t, s.neighborhoodBit(3))
}

func TestSlotOverflowBitIndependentOfNeighborhood(t *testing.T) {
	var s slot[string, int]
	s.emplace("k", 1, 9)
	s.setNeighborhoodBit(2, true)
	s.setOverflow(true)

	assert.True(t, s.hasOverflow())
	assert.True(t, s.neighborhoodBit(2))

	s.setOverflow(false)
	assert.False(t, s.hasOverflow())
	assert.True(t, s.neighborhoodBit(2), "clearing overflow must not disturb the presence bitmap")
	assert.False(t, s.isEmpty())
}

func TestSlotMoveInto(t *testing.T) {
	var src, dst slot[string, int]
	src.emplace("k", 7, 55)

	src.moveInto(&dst)

	assert.True(t, src.isEmpty())
	assert.False(t, dst.isEmpty())
	assert.Equal(t, "k", dst.key)
	assert.Equal(t, 7, dst.val)
	assert.Equal(t, uint64(55), dst.hash)
}
