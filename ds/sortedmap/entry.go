package sortedmap

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Entry is a single key-value pair stored in a SortedMap. Entries are ordered and compared by their key only.
type Entry[K any, V any] struct {
	key   K
	value V
}

// NewEntry returns a new Entry holding the given key and value.
func NewEntry[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{
		key:   key,
		value: value,
	}
}

// Key returns the key of the Entry.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Value returns the value of the Entry.
func (e Entry[K, V]) Value() V {
	return e.value
}

// CompareWith compares the keys of both entries using the given comparator.
func (e Entry[K, V]) CompareWith(other Entry[K, V], compare func(a, b K) int) int {
	return compare(e.key, other.key)
}

// Clone returns a copy of the Entry. Key and value are copied by assignment, use CloneEntry for types that need a
// deep copy.
func (e Entry[K, V]) Clone() Entry[K, V] {
	return NewEntry(e.key, e.value)
}

// String returns a human-readable version of the Entry.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("Entry(%v, %v)", e.key, e.value)
}

// CompareEntries compares two entries by key. It returns 0 if the keys are equal, -1 if the key of a is smaller and 1
// if it is larger.
func CompareEntries[K constraints.Ordered, V any](a, b Entry[K, V]) int {
	return lo.Comparator(a.key, b.key)
}

// EqualEntries returns true if both entries have the same key. Values are not compared.
func EqualEntries[K constraints.Ordered, V any](a, b Entry[K, V]) bool {
	return a.key == b.key
}

// CloneEntry returns a deep copy of the Entry by cloning both key and value.
func CloneEntry[K constraints.Cloneable[K], V constraints.Cloneable[V]](e Entry[K, V]) Entry[K, V] {
	return NewEntry(e.key.Clone(), e.value.Clone())
}
