package sortedmap

import "github.com/iotaledger/hive.go/ierrors"

// ErrNotStrictlyAscending is returned when a map is built from entries that are not sorted by key or contain
// duplicate keys.
var ErrNotStrictlyAscending = ierrors.New("entries are not strictly ascending by key")
