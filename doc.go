// Package acttrie implements an ordered, byte-string-keyed map backed
// by a path-compressed adaptive trie. Interior nodes start small and
// grow through a ladder of capacities as they fill up, collapsing back
// down as entries are removed, so a Trie costs close to a sorted slice
// for a handful of keys sharing a branch and close to a direct-indexed
// table once a branch gets busy, without the caller ever choosing which.
//
// Keys are constructed with Key or one of the From* helpers, which
// produce order-preserving byte encodings for strings and for integers
// of every native width within the int64 range. Trie itself supports the usual ordered-container
// surface: Insert/InsertOrAssign, Find/Count, LowerBound/UpperBound/
// EqualRange, Erase by key or by Position, and bidirectional iteration
// via Iterator and the prefix-scoped PrefixIterator. The rangeset.go
// helpers (CollectBetweenInclusive and friends) collect a range's
// values into a Set3 for callers that want a value set rather than a
// cursor.
package acttrie
