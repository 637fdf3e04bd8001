package sortedmap_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CptBread/sorted-bread-box/ds/sortedmap"
)

type name string

func (n name) Clone() name {
	return n
}

type buffer struct {
	data []byte
}

func (b *buffer) Clone() *buffer {
	return &buffer{data: bytes.Clone(b.data)}
}

func TestEntry(t *testing.T) {
	entry := sortedmap.NewEntry("key", 42)

	require.Equal(t, "key", entry.Key())
	require.Equal(t, 42, entry.Value())
	require.Equal(t, "Entry(key, 42)", entry.String())
	require.Equal(t, entry, entry.Clone())
}

func TestEntry_OrderedByKeyOnly(t *testing.T) {
	a := sortedmap.NewEntry(1, "z")
	b := sortedmap.NewEntry(2, "a")
	c := sortedmap.NewEntry(1, "other")

	require.Equal(t, -1, sortedmap.CompareEntries(a, b))
	require.Equal(t, 1, sortedmap.CompareEntries(b, a))
	require.Equal(t, 0, sortedmap.CompareEntries(a, c))

	require.True(t, sortedmap.EqualEntries(a, c))
	require.False(t, sortedmap.EqualEntries(a, b))

	byKey := func(x, y int) int { return x - y }
	require.Negative(t, a.CompareWith(b, byKey))
	require.Zero(t, a.CompareWith(c, byKey))
}

func TestCloneEntry(t *testing.T) {
	original := sortedmap.NewEntry(name("payload"), &buffer{data: []byte{1, 2, 3}})

	cloned := sortedmap.CloneEntry(original)
	require.Equal(t, original.Key(), cloned.Key())
	require.Equal(t, original.Value().data, cloned.Value().data)
	require.NotSame(t, original.Value(), cloned.Value())

	cloned.Value().data[0] = 9
	require.Equal(t, []byte{1, 2, 3}, original.Value().data)

	shallow := original.Clone()
	require.Same(t, original.Value(), shallow.Value())
}

func TestDeepClone(t *testing.T) {
	sortedMap := sortedmap.NewWithComparator[name, *buffer](func(a, b name) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	sortedMap.Insert("b", &buffer{data: []byte("bravo")})
	sortedMap.Insert("a", &buffer{data: []byte("alpha")})

	cloned := sortedmap.DeepClone(sortedMap)
	require.Equal(t, []name{"a", "b"}, cloned.Keys())

	value, exists := cloned.Get("a")
	require.True(t, exists)
	value.data[0] = 'A'

	original, exists := sortedMap.Get("a")
	require.True(t, exists)
	require.Equal(t, "alpha", string(original.data))

	// the clone keeps ordering by the same comparator
	cloned.Insert("ab", &buffer{})
	require.Equal(t, []name{"a", "ab", "b"}, cloned.Keys())
	require.Equal(t, 2, sortedMap.Size())
}
