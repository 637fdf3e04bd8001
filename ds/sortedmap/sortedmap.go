package sortedmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kr/text"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

const indentationSize = 4

// SortedMap is a map that keeps its entries in a contiguous slice sorted by key. Lookups use binary search, insertions
// and removals shift the entries that follow.
//
// A SortedMap is not safe for concurrent use. Values returned by its methods are copies and are not affected by later
// modifications of the map.
type SortedMap[K any, V any] struct {
	entries []Entry[K, V]
	compare func(a, b K) int

	// holds the map options.
	opts *Options
}

// New returns an empty SortedMap that orders its keys by their natural order.
func New[K constraints.Ordered, V any](opts ...Option) *SortedMap[K, V] {
	return NewWithComparator[K, V](lo.Comparator[K], opts...)
}

// NewWithComparator returns an empty SortedMap that orders its keys with the given comparator. The comparator must
// define a total order and return a negative number, zero or a positive number if a is smaller than, equal to or
// larger than b.
func NewWithComparator[K any, V any](compare func(a, b K) int, opts ...Option) *SortedMap[K, V] {
	mapOpts := newOptions(opts...)

	return &SortedMap[K, V]{
		entries: make([]Entry[K, V], 0, mapOpts.initialCapacity),
		compare: compare,
		opts:    mapOpts,
	}
}

// NewFromSorted returns a SortedMap holding a copy of the given entries, which have to be strictly ascending by key.
func NewFromSorted[K constraints.Ordered, V any](entries []Entry[K, V], opts ...Option) (*SortedMap[K, V], error) {
	return NewFromSortedWithComparator(entries, lo.Comparator[K], opts...)
}

// NewFromSortedWithComparator returns a SortedMap holding a copy of the given entries, which have to be strictly
// ascending according to the given comparator.
func NewFromSortedWithComparator[K any, V any](entries []Entry[K, V], compare func(a, b K) int, opts ...Option) (*SortedMap[K, V], error) {
	s := NewWithComparator[K, V](compare, opts...)

	for i := 1; i < len(entries); i++ {
		if compare(entries[i-1].key, entries[i].key) >= 0 {
			s.opts.logger.Debug("rejected unsorted entries",
				zap.Int("index", i),
				zap.Int("count", len(entries)),
			)

			return nil, ierrors.Wrapf(ErrNotStrictlyAscending, "entry %d (%v) does not follow entry %d (%v)", i, entries[i].key, i-1, entries[i-1].key)
		}
	}

	s.entries = append(s.entries, entries...)

	return s, nil
}

// NewFromEntries returns a SortedMap holding the given entries in any order. If a key appears more than once, the
// last occurrence wins.
func NewFromEntries[K constraints.Ordered, V any](entries []Entry[K, V], opts ...Option) *SortedMap[K, V] {
	s := New[K, V](opts...)

	sorted := make([]Entry[K, V], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].key < sorted[j].key
	})

	for _, entry := range sorted {
		if last := len(s.entries) - 1; last >= 0 && s.entries[last].key == entry.key {
			s.entries[last] = entry
			continue
		}

		s.entries = append(s.entries, entry)
	}

	return s
}

// Search returns where the given key is stored, or where it would have to be inserted.
func (s *SortedMap[K, V]) Search(key K) SearchResult {
	return search(s.entries, key, s.compare)
}

// Insert maps the given key to the given value. If the key was present, its value is replaced and the previous value
// is returned.
func (s *SortedMap[K, V]) Insert(key K, value V) (previousValue V, previousValueExisted bool) {
	result := s.Search(key)
	if result.Found {
		previousValue = s.entries[result.Index].value
		s.entries[result.Index].value = value

		return previousValue, true
	}

	s.insertAt(result.Index, NewEntry(key, value))

	return previousValue, false
}

// GetOrInsert returns the value mapped to the given key. If the key is not present, the given value is inserted and
// returned. The given value is discarded if the key exists.
func (s *SortedMap[K, V]) GetOrInsert(key K, value V) V {
	result := s.Search(key)
	if !result.Found {
		s.insertAt(result.Index, NewEntry(key, value))
	}

	return s.entries[result.Index].value
}

// GetOrCreate returns the value mapped to the given key and a flag that indicates if the value was created. The
// passed func is only called if the key does not exist.
func (s *SortedMap[K, V]) GetOrCreate(key K, defaultValueFunc func() V) (value V, created bool) {
	result := s.Search(key)
	if result.Found {
		return s.entries[result.Index].value, false
	}

	value = defaultValueFunc()
	s.insertAt(result.Index, NewEntry(key, value))

	return value, true
}

// Get returns the value mapped to the given key and a flag that indicates if the key exists.
func (s *SortedMap[K, V]) Get(key K) (value V, exists bool) {
	index, exists := s.Search(key).Located()
	if !exists {
		return value, false
	}

	return s.entries[index].value, true
}

// Has returns if an entry with the given key exists.
func (s *SortedMap[K, V]) Has(key K) bool {
	return s.Search(key).Found
}

// Remove removes the entry with the given key and returns its value, and possibly shrinks the entries if the
// shrinking conditions have been reached.
func (s *SortedMap[K, V]) Remove(key K) (removedValue V, existed bool) {
	index, existed := s.Search(key).Located()
	if !existed {
		return removedValue, false
	}

	removedValue = s.entries[index].value

	last := len(s.entries) - 1
	copy(s.entries[index:], s.entries[index+1:])
	s.entries[last] = Entry[K, V]{}
	s.entries = s.entries[:last]

	if s.shouldShrink() {
		s.shrink()
	}

	return removedValue, true
}

// Head returns the entry with the smallest key.
func (s *SortedMap[K, V]) Head() (key K, value V, exists bool) {
	if exists = len(s.entries) > 0; !exists {
		return
	}

	return s.entries[0].key, s.entries[0].value, true
}

// Tail returns the entry with the largest key.
func (s *SortedMap[K, V]) Tail() (key K, value V, exists bool) {
	if exists = len(s.entries) > 0; !exists {
		return
	}

	last := s.entries[len(s.entries)-1]

	return last.key, last.value, true
}

// ForEach iterates through the entries in ascending order and calls the consumer for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if s == nil {
		return true
	}

	for _, entry := range s.entries {
		if !consumer(entry.key, entry.value) {
			return false
		}
	}

	return true
}

// ForEachReverse iterates through the entries in descending order and calls the consumer for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedMap[K, V]) ForEachReverse(consumer func(key K, value V) bool) bool {
	if s == nil {
		return true
	}

	for i := len(s.entries) - 1; i >= 0; i-- {
		if !consumer(s.entries[i].key, s.entries[i].value) {
			return false
		}
	}

	return true
}

// Keys returns the keys in ascending order.
func (s *SortedMap[K, V]) Keys() []K {
	return lo.Map(s.entries, Entry[K, V].Key)
}

// Values returns the values in the ascending order of their keys.
func (s *SortedMap[K, V]) Values() []V {
	return lo.Map(s.entries, Entry[K, V].Value)
}

// Entries returns a copy of the entries in ascending order.
func (s *SortedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(s.entries))
	copy(entries, s.entries)

	return entries
}

// Size returns the number of entries in the map.
func (s *SortedMap[K, V]) Size() int {
	if s == nil {
		return 0
	}

	return len(s.entries)
}

// IsEmpty returns if the map is empty.
func (s *SortedMap[K, V]) IsEmpty() bool {
	return s.Size() == 0
}

// Clear removes all entries from the map.
func (s *SortedMap[K, V]) Clear() {
	s.entries = make([]Entry[K, V], 0, s.opts.initialCapacity)
}

// Clone returns a copy of the map. Keys and values are copied by assignment.
func (s *SortedMap[K, V]) Clone() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		entries: s.Entries(),
		compare: s.compare,
		opts:    s.opts,
	}
}

// Shrink reallocates the entries so that no unused capacity beyond the initial capacity is retained.
func (s *SortedMap[K, V]) Shrink() {
	s.shrink()
}

// String returns a human-readable version of the map.
func (s *SortedMap[K, V]) String() string {
	var builder strings.Builder
	for _, entry := range s.entries {
		builder.WriteString(fmt.Sprintf("%v: %v\n", entry.key, entry.value))
	}

	return "SortedMap {\n" + text.Indent(builder.String(), strings.Repeat(" ", indentationSize)) + "}"
}

// insertAt splices the entry into the given position and shifts the following entries.
func (s *SortedMap[K, V]) insertAt(index int, entry Entry[K, V]) {
	s.entries = append(s.entries, Entry[K, V]{})
	copy(s.entries[index+1:], s.entries[index:])
	s.entries[index] = entry
}

// shouldShrink checks if the conditions to shrink the entries are met.
func (s *SortedMap[K, V]) shouldShrink() bool {
	size, capacity := len(s.entries), cap(s.entries)

	// check if one of the conditions was defined, otherwise never shrink
	if !(s.opts.shrinkingThresholdRatio != 0.0 || s.opts.shrinkingThresholdCount != 0) {
		return false
	}

	// never shrink below the preallocated capacity
	if capacity <= s.opts.initialCapacity {
		return false
	}

	if s.opts.shrinkingThresholdRatio != 0.0 && size != 0 {
		if float32(capacity)/float32(size) < s.opts.shrinkingThresholdRatio {
			return false
		}
	}

	if s.opts.shrinkingThresholdCount != 0 {
		if capacity < s.opts.shrinkingThresholdCount {
			return false
		}
	}

	return true
}

// shrink copies the entries into a slice that fits them.
func (s *SortedMap[K, V]) shrink() {
	oldCapacity := cap(s.entries)

	shrunk := make([]Entry[K, V], len(s.entries), max(len(s.entries), s.opts.initialCapacity))
	copy(shrunk, s.entries)
	s.entries = shrunk

	s.opts.logger.Debug("shrunk entries",
		zap.Int("len", len(s.entries)),
		zap.Int("oldCap", oldCapacity),
		zap.Int("newCap", cap(s.entries)),
	)
}

// DeepClone returns a copy of the map in which every key and value has been cloned.
func DeepClone[K constraints.Cloneable[K], V constraints.Cloneable[V]](s *SortedMap[K, V]) *SortedMap[K, V] {
	return &SortedMap[K, V]{
		entries: lo.Map(s.entries, CloneEntry[K, V]),
		compare: s.compare,
		opts:    s.opts,
	}
}
