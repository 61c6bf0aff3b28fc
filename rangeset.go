package acttrie

import (
	set3 "github.com/TomTonic/Set3"
)

// These helpers walk a Trie's ordered iterators (LowerBound/UpperBound/
// PrefixIterator) over a requested range and collect the matching
// values into a Set3. Set3 requires a comparable element type, which
// Trie itself does not, so these are free functions parameterized
// separately rather than Trie methods.

// CollectAll returns a set of every value stored in t.
func CollectAll[V comparable](t *Trie[V]) *set3.Set3[V] {
	result := set3.EmptyWithCapacity[V](uint32(t.Size()))
	for pos := t.Begin(); !pos.AtEnd(); pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectBetweenInclusive returns the set of values whose keys are
// between from and to, including entries stored exactly at from or to.
func CollectBetweenInclusive[V comparable](t *Trie[V], from, to Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	upper := t.UpperBound(to, false)
	for pos := t.LowerBound(from); !pos.AtEnd() && pos.owner != upper.owner; pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectBetweenExclusive returns the set of values whose keys lie
// strictly between from and to.
func CollectBetweenExclusive[V comparable](t *Trie[V], from, to Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	lower := t.UpperBound(from, false)
	upper := t.LowerBound(to)
	for pos := lower; !pos.AtEnd() && pos.owner != upper.owner; pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectFromInclusive returns the set of values whose keys are >= from.
func CollectFromInclusive[V comparable](t *Trie[V], from Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	for pos := t.LowerBound(from); !pos.AtEnd(); pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectFromExclusive returns the set of values whose keys are > from.
func CollectFromExclusive[V comparable](t *Trie[V], from Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	for pos := t.UpperBound(from, false); !pos.AtEnd(); pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectToInclusive returns the set of values whose keys are <= to.
func CollectToInclusive[V comparable](t *Trie[V], to Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	upper := t.UpperBound(to, false)
	for pos := t.Begin(); !pos.AtEnd() && pos.owner != upper.owner; pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectToExclusive returns the set of values whose keys are < to.
func CollectToExclusive[V comparable](t *Trie[V], to Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	upper := t.LowerBound(to)
	for pos := t.Begin(); !pos.AtEnd() && pos.owner != upper.owner; pos = t.Next(pos) {
		result.Add(pos.Value())
	}
	return result
}

// CollectPrefixOf returns the set of every value whose key is a prefix
// of (or equal to) query.
func CollectPrefixOf[V comparable](t *Trie[V], query Key) *set3.Set3[V] {
	result := set3.Empty[V]()
	for it := t.PrefixIterator(query); !it.AtEnd(); it.Next() {
		result.Add(it.Value())
	}
	return result
}
