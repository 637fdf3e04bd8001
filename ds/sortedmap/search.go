package sortedmap

import "sort"

// SearchResult is the outcome of a binary search over the entries of a SortedMap. If Found is true, Index is the
// position of the entry with the searched key, otherwise it is the position at which that key would have to be
// inserted to keep the entries sorted.
type SearchResult struct {
	Index int
	Found bool
}

// Located returns the index of the matching entry and true, or false if the key is not stored.
func (s SearchResult) Located() (index int, ok bool) {
	if !s.Found {
		return 0, false
	}

	return s.Index, true
}

// InsertionPoint returns the index at which the missing key belongs and true, or false if the key is stored.
func (s SearchResult) InsertionPoint() (index int, ok bool) {
	if s.Found {
		return 0, false
	}

	return s.Index, true
}

// search is the binary search that all operations of the SortedMap share. The returned index always equals the
// number of entries whose key is strictly smaller than the given key.
func search[K any, V any](entries []Entry[K, V], key K, compare func(a, b K) int) SearchResult {
	index := sort.Search(len(entries), func(i int) bool {
		return compare(entries[i].key, key) >= 0
	})

	return SearchResult{
		Index: index,
		Found: index < len(entries) && compare(entries[index].key, key) == 0,
	}
}
