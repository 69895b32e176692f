package hopscotch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutGetRemove(t *testing.T) {
	m := New[string, int]()

	assert.True(t, m.Put("one", 1))
	assert.True(t, m.Put("two", 2))
	assert.False(t, m.Put("one", 100), "re-putting an existing key is not a new insert")

	v, ok := m.Get("one")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	assert.Equal(t, 2, m.Size())
	assert.True(t, m.Remove("two"))
	assert.False(t, m.Remove("two"))
	assert.Equal(t, 1, m.Size())
}

func TestMapAt(t *testing.T) {
	m := New[string, int]()
	m.Put("k", 5)

	v, err := m.At("k")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = m.At("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMapTryEmplace(t *testing.T) {
	m := New[string, int]()
	assert.True(t, m.TryEmplace("k", 1))
	assert.False(t, m.TryEmplace("k", 2))

	v, _ := m.Get("k")
	assert.Equal(t, 1, v, "TryEmplace must not overwrite an existing entry")
}

func TestMapGetOrInsert(t *testing.T) {
	m := New[string, int]()
	assert.Equal(t, 0, m.GetOrInsert("k"))

	m.Put("k", 7)
	assert.Equal(t, 7, m.GetOrInsert("k"))
}

func TestMapClear(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 10; i++ {
		m.Put(string(rune('a'+i)), i)
	}
	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.Empty())
}

func TestMapEachVisitsEveryEntry(t *testing.T) {
	m := New[string, int]()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Put(k, v)
	}

	got := map[string]int{}
	m.Each(func(k string, v int) bool {
		got[k] = v
		return false
	})
	assert.Equal(t, want, got)
}

func TestMapIteratorAndFind(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	it, ok := m.Find("a")
	require.True(t, ok)
	assert.Equal(t, "a", it.Key())
	assert.Equal(t, 1, it.Value())

	_, ok = m.Find("z")
	assert.False(t, ok)

	count := 0
	for it := m.Iterator(); it.Valid(); it.Next() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestMapCopyIsIndependent(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	cp := m.Copy()
	cp.Put("b", 2)

	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 2, cp.Size())
	assert.True(t, MapEqual(m, m))
	assert.False(t, MapEqual(m, cp))
}

func TestMapEqualIgnoresInsertionOrder(t *testing.T) {
	a := New[string, int]()
	a.Put("x", 1)
	a.Put("y", 2)

	b := New[string, int]()
	b.Put("y", 2)
	b.Put("x", 1)

	assert.True(t, MapEqual(a, b))

	b.Put("y", 99)
	assert.False(t, MapEqual(a, b))
}

func TestNewMapConfigValidation(t *testing.T) {
	_, err := NewMap[string, int](Config[string, int]{NeighborhoodSize: 100})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewMap[string, int](Config[string, int]{MaxLoadFactor: 2.0})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMapWithCustomHasherAndEqual(t *testing.T) {
	type point struct{ x, y int }
	cfg := Config[point, string]{
		Hasher: func(p point) uint64 { return uint64(p.x)*1000 + uint64(p.y) },
		Equal:  func(a, b point) bool { return a.x == b.x && a.y == b.y },
	}
	m := MustNewMap[point, string](cfg)

	m.Put(point{1, 2}, "a")
	m.Put(point{3, 4}, "b")

	v, ok := m.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestMapRehashAndReserve(t *testing.T) {
	m := New[int, int]()
	require.NoError(t, m.Reserve(1000))
	assert.GreaterOrEqual(t, m.BucketCount(), 1000)

	for i := 0; i < 1000; i++ {
		m.Put(i, i*i)
	}
	for i := 0; i < 1000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
}

func TestMapMaxProbesForEmptyBucket(t *testing.T) {
	m := New[string, int]()
	assert.ErrorIs(t, m.MaxProbesForEmptyBucket(0), ErrOutOfRange)
	assert.NoError(t, m.MaxProbesForEmptyBucket(4))
}

// TestHeterogeneousLookup is spec §8 scenario 6: looking a Map up by an
// alternate key representation without constructing the stored key type.
func TestHeterogeneousLookup(t *testing.T) {
	type id struct{ raw string }
	m := MustNewMap[id, int](Config[id, int]{
		Hasher: func(k id) uint64 {
			var h uint64 = 14695981039346656037
			for i := 0; i < len(k.raw); i++ {
				h ^= uint64(k.raw[i])
				h *= 1099511628211
			}
			return h
		},
		Equal: func(a, b id) bool { return a.raw == b.raw },
	})

	m.Put(id{"alpha"}, 1)
	m.Put(id{"beta"}, 2)

	hashAlt := func(s string) uint64 {
		var h uint64 = 14695981039346656037
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= 1099511628211
		}
		return h
	}
	equalAlt := func(k id, alt string) bool { return k.raw == alt }

	v, ok := FindAs[id, int, string](m, "alpha", hashAlt, equalAlt)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, ContainsAs[id, int, string](m, "beta", hashAlt, equalAlt))
	assert.False(t, ContainsAs[id, int, string](m, "gamma", hashAlt, equalAlt))

	assert.True(t, EraseAs[id, int, string](m, "alpha", hashAlt, equalAlt))
	assert.False(t, m.Contains(id{"alpha"}))
}
