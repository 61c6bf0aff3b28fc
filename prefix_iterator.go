package acttrie

// walkPrefixPath descends from root consuming query one edge at a
// time, collecting the value position of every node whose key is a
// prefix of (or equal to) query, in ascending key-length order. The
// walk stops as soon as the trie diverges from query, query is
// exhausted, or a leaf is reached with query bytes still unconsumed;
// a leaf has no children to descend into further.
func walkPrefixPath[V any](root node[V], query Key) []node[V] {
	var path []node[V]
	cur := root
	p := 0
	for {
		label := cur.edgeLabel()
		rest := query[p:]
		m := matchLength(label, rest)
		if m < len(label) {
			return path
		}
		p += m
		if cur.hasValue() {
			path = append(path, cur)
		}
		if p == len(query) {
			return path
		}
		in, ok := cur.(interior[V])
		if !ok {
			return path
		}
		slot, found := in.findEntry(query[p])
		if !found {
			return path
		}
		cur = in.childAt(slot)
		p++
	}
}

// PrefixIterator walks every stored entry whose key is a prefix of (or
// equal to) a fixed query string, in ascending order of key length.
// Because such keys lie along the single root-to-query path, the
// matching set is computed once at construction and the iterator then
// just walks that list; no re-descent is needed on reverse-from-end.
type PrefixIterator[V any] struct {
	path []node[V]
	idx  int // -1 is the sole exhausted sentinel, reached from either end
}

// PrefixIterator returns a PrefixIterator over every stored key that is
// a prefix of (or equal to) query, in ascending length order. If no
// stored key qualifies, the returned iterator starts (and stays)
// exhausted.
func (t *Trie[V]) PrefixIterator(query Key) *PrefixIterator[V] {
	if t.root == nil {
		return &PrefixIterator[V]{idx: -1}
	}
	path := walkPrefixPath[V](t.root, query)
	idx := -1
	if len(path) > 0 {
		idx = 0
	}
	return &PrefixIterator[V]{path: path, idx: idx}
}

// AtEnd reports whether the iterator has been exhausted.
func (it *PrefixIterator[V]) AtEnd() bool { return it.idx < 0 }

// Key returns the key at the iterator's current position.
func (it *PrefixIterator[V]) Key() Key {
	if it.AtEnd() {
		panic(ErrExhaustedIterator)
	}
	return reconstructKey(it.path[it.idx])
}

// Value returns the value at the iterator's current position.
func (it *PrefixIterator[V]) Value() V {
	if it.AtEnd() {
		panic(ErrExhaustedIterator)
	}
	owner := it.path[it.idx]
	if leaf, ok := owner.(*leafNode[V]); ok {
		return leaf.value()
	}
	return owner.value()
}

// Position returns the current position as a Position[V].
func (it *PrefixIterator[V]) Position() Position[V] {
	if it.AtEnd() {
		return Position[V]{}
	}
	return Position[V]{owner: it.path[it.idx]}
}

// Next advances to the next matching entry (the next-longer stored
// prefix of the query). A no-op once exhausted, from either direction.
func (it *PrefixIterator[V]) Next() {
	if it.idx < 0 {
		return
	}
	if it.idx+1 < len(it.path) {
		it.idx++
		return
	}
	it.idx = -1
}

// Prev moves to the previous matching entry (the next-shorter stored
// prefix of the query). Called on an exhausted iterator, it lands on
// the longest matching entry, matching the usual `--end()` idiom.
func (it *PrefixIterator[V]) Prev() {
	if it.idx < 0 {
		if len(it.path) > 0 {
			it.idx = len(it.path) - 1
		}
		return
	}
	if it.idx > 0 {
		it.idx--
		return
	}
	it.idx = -1
}
