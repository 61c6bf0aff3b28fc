package acttrie

// Trie is an ordered, byte-string-keyed associative container built on
// a path-compressed adaptive trie: the node taxonomy, capacity policy,
// and algorithms described across node.go/node_leaf.go/
// node_compressed.go/node_full.go/policy.go. Trie itself is the public
// façade: construction, size tracking, and the insert/find/erase/range
// operations, built on New(opts...) functional configuration for
// single-value-per-key map semantics.
type Trie[V any] struct {
	root   node[V]
	size   int
	policy *SizePolicy
	alloc  *allocator[V]
}

// Option configures a Trie at construction time.
type Option func(*config)

type config struct {
	policy *SizePolicy
}

// WithSizePolicy selects the adaptive capacity policy a Trie's interior
// nodes grow and shrink under. Defaults to SmallPolicy.
func WithSizePolicy(p *SizePolicy) Option {
	return func(c *config) { c.policy = p }
}

// New returns an empty Trie. It panics if an Option configures an
// invalid SizePolicy, the same way the standard library's text/template
// panics on a malformed template passed to Must.
func New[V any](opts ...Option) *Trie[V] {
	cfg := config{policy: SmallPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validatePolicy(cfg.policy); err != nil {
		panic(err)
	}
	return &Trie[V]{policy: cfg.policy, alloc: newAllocator[V]()}
}

// FromPairs builds a Trie from an ordered sequence of key/value pairs,
// inserting each in turn. Pairs need not be pre-sorted.
func FromPairs[V any](pairs []KeyValue[V], opts ...Option) *Trie[V] {
	t := New[V](opts...)
	for _, kv := range pairs {
		t.Insert(kv.Key, kv.Value)
	}
	return t
}

// KeyValue is a single key/value pair, used by FromPairs.
type KeyValue[V any] struct {
	Key   Key
	Value V
}

// Size returns the number of stored entries.
func (t *Trie[V]) Size() int { return t.size }

// Empty reports whether the Trie holds no entries.
func (t *Trie[V]) Empty() bool { return t.size == 0 }

// Clear removes every entry, resetting the Trie to empty.
func (t *Trie[V]) Clear() {
	t.root = nil
	t.size = 0
	t.alloc = newAllocator[V]()
}

// Position identifies a single stored entry. The zero Position (and any
// Position returned past the last or before the first entry) is the
// end/invalid position; AtEnd reports this.
type Position[V any] struct {
	owner node[V]
}

// AtEnd reports whether p refers to no entry (the end sentinel).
func (p Position[V]) AtEnd() bool { return p.owner == nil }

// Key reconstructs and returns the stored key at p. Calling Key on an
// end position panics, matching the core's documented treatment of
// dereferencing an end iterator as a caller error.
func (p Position[V]) Key() Key {
	if p.owner == nil {
		panic(ErrExhaustedIterator)
	}
	return reconstructKey(p.owner)
}

// Value returns the value stored at p. Calling Value on an end position
// panics.
func (p Position[V]) Value() V {
	if p.owner == nil {
		panic(ErrExhaustedIterator)
	}
	if leaf, ok := p.owner.(*leafNode[V]); ok {
		return leaf.value()
	}
	return p.owner.value()
}

// SetValue overwrites the value stored at p in place.
func (p Position[V]) SetValue(v V) {
	if p.owner == nil {
		panic(ErrExhaustedIterator)
	}
	p.owner.setValue(v)
}

func reconstructKey[V any](n node[V]) Key {
	var parts []Key
	cur := n
	for {
		parts = append(parts, cur.edgeLabel())
		par := cur.parent()
		if par == nil {
			break
		}
		parts = append(parts, Key{cur.parentIndex()})
		cur = node[V](par)
	}
	var out Key
	for i := len(parts) - 1; i >= 0; i-- {
		out.append(parts[i])
	}
	return out
}

// updateReference patches whichever structure referenced n's former
// self (the Trie's root pointer, or a grandparent's child-table slot)
// to point at n instead. n's own parent/parentIndex fields (already
// carried over by the growth/shrink/promotion code that produced n)
// tell us where that is, so callers never need to track the old
// identity explicitly: growth, shrink, and promotion all return a
// fresh handle rather than mutate in place, and this one helper stores
// it back wherever it's referenced from, applied uniformly to every
// mutating node operation.
func (t *Trie[V]) updateReference(n node[V]) {
	gp := n.parent()
	if gp == nil {
		t.root = n
		return
	}
	slot, found := gp.findEntry(n.parentIndex())
	if !found {
		panic("acttrie: inconsistent parent link")
	}
	gp.setChildAt(slot, n)
}

func (t *Trie[V]) freeInterior(n interior[V]) {
	switch x := n.(type) {
	case *compressedNode[V]:
		t.alloc.freeCompressed(x)
	case *fullNode[V]:
		t.alloc.freeFull(x)
	}
}

// Insert adds key/value if key is not already present. It returns the
// position of the entry (existing or newly created) and whether an
// insertion actually happened. Duplicates are never overwritten by
// Insert; use InsertOrAssign for overwrite-on-duplicate semantics.
func (t *Trie[V]) Insert(key Key, value V) (Position[V], bool) {
	k := key.Clone()
	if t.root == nil {
		leaf := t.alloc.newLeaf(k, value)
		t.root = leaf
		t.size++
		return Position[V]{owner: leaf}, true
	}
	pos, inserted := t.insertAt(t.root, k, 0, value)
	if inserted {
		t.size++
	}
	return pos, inserted
}

// InsertOrAssign inserts key/value, overwriting any existing value for
// key. Implemented as an Insert followed by a mutate-through-position
// on the existing entry when one was already there.
func (t *Trie[V]) InsertOrAssign(key Key, value V) Position[V] {
	pos, inserted := t.Insert(key, value)
	if !inserted {
		pos.SetValue(value)
	}
	return pos
}

// insertAt handles steps 1-3 of the insertion algorithm (matching and,
// if necessary, splitting cur's edge label) for any node, leaf or
// interior, uniformly.
func (t *Trie[V]) insertAt(cur node[V], key Key, p int, value V) (Position[V], bool) {
	label := cur.edgeLabel()
	rest := key[p:]
	m := matchLength(label, rest)

	if m < len(label) {
		branchByte := label[m]
		cur.setEdgeLabel(append(Key{}, label[m+1:]...))

		newInterior := t.alloc.newCompressed(t.policy.Initial())
		newInterior.label = append(Key{}, label[:m]...)
		newInterior.par = cur.parent()
		newInterior.pIndex = cur.parentIndex()
		newInterior.bytes = append(newInterior.bytes, branchByte)
		newInterior.children = append(newInterior.children, cur)
		newInterior.count = 1
		cur.setParent(newInterior)
		cur.setParentIndex(branchByte)

		t.updateReference(newInterior)

		if p+m == len(key) {
			newInterior.setValue(value)
			return Position[V]{owner: newInterior}, true
		}
		return t.insertAfterLabelMatch(newInterior, key, p+m, value)
	}

	return t.insertAfterLabelMatch(cur, key, p+len(label), value)
}

// insertAfterLabelMatch handles steps 4-5: cur's own edge label has
// already been fully matched through offset p.
func (t *Trie[V]) insertAfterLabelMatch(cur node[V], key Key, p int, value V) (Position[V], bool) {
	if p == len(key) {
		if leaf, ok := cur.(*leafNode[V]); ok {
			return Position[V]{owner: leaf}, false
		}
		in := cur.(interior[V])
		if in.hasValue() {
			return Position[V]{owner: in}, false
		}
		in.setValue(value)
		return Position[V]{owner: in}, true
	}

	b := key[p]

	if leaf, ok := cur.(*leafNode[V]); ok {
		newInterior := t.alloc.newCompressed(t.policy.Initial())
		newInterior.label = append(Key{}, leaf.label...)
		newInterior.par = leaf.parent()
		newInterior.pIndex = leaf.parentIndex()
		newInterior.setValue(leaf.value())
		t.updateReference(newInterior)

		newLeaf := t.alloc.newLeaf(append(Key{}, key[p+1:]...), value)
		self, _ := newInterior.insertChild(t.alloc, t.policy, b, newLeaf)
		t.updateReference(self)
		t.alloc.freeLeaf(leaf)
		return Position[V]{owner: newLeaf}, true
	}

	in := cur.(interior[V])
	slot, found := in.findEntry(b)
	if !found {
		newLeaf := t.alloc.newLeaf(append(Key{}, key[p+1:]...), value)
		self, _ := in.insertChild(t.alloc, t.policy, b, newLeaf)
		t.updateReference(self)
		return Position[V]{owner: newLeaf}, true
	}
	return t.insertAt(in.childAt(slot), key, p+1, value)
}

// descendBoundary walks the tree exactly consuming key, returning the
// node positioned precisely at the end of key (whether or not that
// node carries a value) and whether such a boundary exists at all.
func (t *Trie[V]) descendBoundary(key Key) (node[V], bool) {
	if t.root == nil {
		return nil, false
	}
	cur := t.root
	p := 0
	for {
		label := cur.edgeLabel()
		rest := key[p:]
		m := matchLength(label, rest)
		if m < len(label) {
			return nil, false
		}
		p += len(label)
		if p == len(key) {
			return cur, true
		}
		in, ok := cur.(interior[V])
		if !ok {
			return nil, false
		}
		slot, found := in.findEntry(key[p])
		if !found {
			return nil, false
		}
		cur = in.childAt(slot)
		p++
	}
}

// Find looks up key and reports whether it is present.
func (t *Trie[V]) Find(key Key) (Position[V], bool) {
	n, ok := t.descendBoundary(key)
	if !ok || !n.hasValue() {
		return Position[V]{}, false
	}
	return Position[V]{owner: n}, true
}

// Count returns 1 or 0 for exact lookups. With matchPart set it instead
// returns the number of stored keys that extend (or equal) key, i.e.
// that have key as a prefix: the subtree value-count at key's boundary, which may fall in
// the middle of an edge label (a partial match still scopes the whole
// subtree below it).
func (t *Trie[V]) Count(key Key, matchPart bool) int {
	if !matchPart {
		n, ok := t.descendBoundary(key)
		if ok && n.hasValue() {
			return 1
		}
		return 0
	}
	n, ok := t.descendPrefixBoundary(key)
	if !ok {
		return 0
	}
	return subtreeValueCount[V](n)
}

// descendPrefixBoundary is descendBoundary relaxed for matchPart
// queries: key may run out partway through a node's edge label, in
// which case that node still roots the subtree of keys extending key.
func (t *Trie[V]) descendPrefixBoundary(key Key) (node[V], bool) {
	if t.root == nil {
		return nil, false
	}
	cur := t.root
	p := 0
	for {
		label := cur.edgeLabel()
		rest := key[p:]
		m := matchLength(label, rest)
		if m == len(rest) {
			return cur, true
		}
		if m < len(label) {
			return nil, false
		}
		p += len(label)
		in, ok := cur.(interior[V])
		if !ok {
			return nil, false
		}
		slot, found := in.findEntry(key[p])
		if !found {
			return nil, false
		}
		cur = in.childAt(slot)
		p++
	}
}

func subtreeValueCount[V any](n node[V]) int {
	count := 0
	if n.hasValue() {
		count++
	}
	if in, ok := n.(interior[V]); ok {
		for slot := in.firstEntry(); slot != endSlot; slot = in.nextEntry(slot) {
			if slot == valueSlot {
				continue
			}
			count += subtreeValueCount[V](in.childAt(slot))
		}
	}
	return count
}

// LowerBound returns the position of the first stored key >= key.
func (t *Trie[V]) LowerBound(key Key) Position[V] {
	if t.root == nil {
		return Position[V]{}
	}
	n, ok := lowerBoundDescend[V](t.root, key, 0)
	if !ok {
		return Position[V]{}
	}
	return Position[V]{owner: n}
}

// UpperBound returns the position of the first stored key strictly
// greater than key. When matchPart is true and key exactly matches a
// stored node's position, the entire subtree under that node (every
// key extending it) is skipped as well.
func (t *Trie[V]) UpperBound(key Key, matchPart bool) Position[V] {
	if t.root == nil {
		return Position[V]{}
	}
	n, ok := upperBoundDescend[V](t.root, key, 0, matchPart)
	if !ok {
		return Position[V]{}
	}
	return Position[V]{owner: n}
}

// EqualRange composes LowerBound and UpperBound.
func (t *Trie[V]) EqualRange(key Key) (Position[V], Position[V]) {
	return t.LowerBound(key), t.UpperBound(key, false)
}

func lowerBoundDescend[V any](cur node[V], key Key, p int) (node[V], bool) {
	label := cur.edgeLabel()
	rest := key[p:]
	m := matchLength(label, rest)

	if m == len(label) {
		newP := p + m
		if newP == len(key) {
			n, _ := descendToFirstNode[V](cur)
			return n, true
		}
		if _, ok := cur.(*leafNode[V]); ok {
			return stepNextNode[V](cur)
		}
		in := cur.(interior[V])
		b := key[newP]
		slot, found := in.findEntry(b)
		if found {
			return lowerBoundDescend[V](in.childAt(slot), key, newP+1)
		}
		if slot == endSlot {
			return stepNextNode[V](cur)
		}
		n, _ := descendToFirstNode[V](in.childAt(slot))
		return n, true
	}

	if p+m == len(key) {
		n, _ := descendToFirstNode[V](cur)
		return n, true
	}
	if label[m] > rest[m] {
		n, _ := descendToFirstNode[V](cur)
		return n, true
	}
	return stepNextNode[V](cur)
}

func upperBoundDescend[V any](cur node[V], key Key, p int, matchPart bool) (node[V], bool) {
	label := cur.edgeLabel()
	rest := key[p:]
	m := matchLength(label, rest)

	if m == len(label) {
		newP := p + m
		if newP == len(key) {
			if matchPart {
				return stepNextNode[V](cur)
			}
			owner, _, atEnd := stepNext[V](cur, valueSlot)
			if atEnd {
				return nil, false
			}
			return owner, true
		}
		if _, ok := cur.(*leafNode[V]); ok {
			return stepNextNode[V](cur)
		}
		in := cur.(interior[V])
		b := key[newP]
		slot, found := in.findEntry(b)
		if found {
			return upperBoundDescend[V](in.childAt(slot), key, newP+1, matchPart)
		}
		if slot == endSlot {
			return stepNextNode[V](cur)
		}
		n, _ := descendToFirstNode[V](in.childAt(slot))
		return n, true
	}

	if p+m == len(key) {
		// key ran out inside cur's edge label: every key below cur
		// extends the query, so matchPart skips the whole subtree.
		if matchPart {
			return stepNextNode[V](cur)
		}
		n, _ := descendToFirstNode[V](cur)
		return n, true
	}
	if label[m] > rest[m] {
		n, _ := descendToFirstNode[V](cur)
		return n, true
	}
	return stepNextNode[V](cur)
}

// Erase removes key if present, reporting whether anything was removed.
func (t *Trie[V]) Erase(key Key) bool {
	pos, ok := t.Find(key)
	if !ok {
		return false
	}
	t.EraseAt(pos)
	return true
}

// EraseAt removes the entry at pos and returns the position of its
// in-order successor (or the end position, if pos was the last entry).
func (t *Trie[V]) EraseAt(pos Position[V]) Position[V] {
	owner := pos.owner
	if owner == nil {
		return pos
	}
	succOwner, _, atEnd := stepNext[V](owner, valueSlot)
	t.removeValueAt(owner)
	t.size--
	if atEnd {
		return Position[V]{}
	}
	return Position[V]{owner: succOwner}
}

// EraseRange removes every entry in [from, to), advancing from forward
// until it reaches to (or the end).
func (t *Trie[V]) EraseRange(from, to Position[V]) int {
	removed := 0
	cur := from
	for !cur.AtEnd() && cur.owner != to.owner {
		cur = t.EraseAt(cur)
		removed++
	}
	return removed
}

func (t *Trie[V]) removeValueAt(owner node[V]) {
	if leaf, ok := owner.(*leafNode[V]); ok {
		parent := leaf.parent()
		if parent == nil {
			t.root = nil
			t.alloc.freeLeaf(leaf)
			return
		}
		slot, found := parent.findEntry(leaf.parentIndex())
		if !found {
			panic("acttrie: inconsistent parent link")
		}
		t.alloc.freeLeaf(leaf)
		newParent := parent.eraseChild(t.alloc, t.policy, slot)
		t.updateReference(newParent)
		t.stabilize(newParent)
		return
	}
	in := owner.(interior[V])
	in.clearValue()
	t.stabilize(in)
}

// stabilize restores the invariant that an interior node always either
// carries a value or has at least two children, after a value or child
// has just been removed from n: a value-less interior left with
// exactly one child is merged into that child (their edge labels
// concatenated around the branching byte), and a childless interior is
// either converted back to a leaf (if it still holds a value) or
// removed entirely, cascading the same check into its former parent.
func (t *Trie[V]) stabilize(n interior[V]) {
	if n.childCount() == 0 {
		if n.hasValue() {
			t.convertToLeaf(n)
		} else {
			t.removeEmptyInterior(n)
		}
		return
	}
	if n.childCount() == 1 && !n.hasValue() {
		t.collapseSingleChild(n)
	}
}

func (t *Trie[V]) convertToLeaf(n interior[V]) {
	leaf := t.alloc.newLeaf(append(Key{}, n.edgeLabel()...), n.value())
	leaf.setParent(n.parent())
	leaf.setParentIndex(n.parentIndex())
	t.freeInterior(n)
	t.updateReference(leaf)
}

func (t *Trie[V]) removeEmptyInterior(n interior[V]) {
	parent := n.parent()
	if parent == nil {
		t.root = nil
		t.freeInterior(n)
		return
	}
	slot, found := parent.findEntry(n.parentIndex())
	if !found {
		panic("acttrie: inconsistent parent link")
	}
	t.freeInterior(n)
	newParent := parent.eraseChild(t.alloc, t.policy, slot)
	t.updateReference(newParent)
	t.stabilize(newParent)
}

func (t *Trie[V]) collapseSingleChild(n interior[V]) {
	slot := n.firstEntry()
	b := n.entryByte(slot)
	child := n.childAt(slot)

	merged := append(Key{}, n.edgeLabel()...)
	merged = append(merged, b)
	merged = append(merged, child.edgeLabel()...)
	child.setEdgeLabel(merged)
	child.setParent(n.parent())
	child.setParentIndex(n.parentIndex())

	t.freeInterior(n)
	t.updateReference(child)
}

// Begin returns the position of the first (smallest) stored entry.
func (t *Trie[V]) Begin() Position[V] {
	if t.root == nil {
		return Position[V]{}
	}
	n, _ := descendToFirstNode[V](t.root)
	return Position[V]{owner: n}
}

// End returns the position one past the last entry.
func (t *Trie[V]) End() Position[V] { return Position[V]{} }

// RBegin returns the position of the last (largest) stored entry, the
// starting point for reverse iteration.
func (t *Trie[V]) RBegin() Position[V] {
	if t.root == nil {
		return Position[V]{}
	}
	n, _ := descendToLastNode[V](t.root)
	return Position[V]{owner: n}
}

// Next returns the position immediately after pos in ascending key
// order, or the end position if pos was the last entry.
func (t *Trie[V]) Next(pos Position[V]) Position[V] {
	if pos.owner == nil {
		return Position[V]{}
	}
	n, _, atEnd := stepNext[V](pos.owner, valueSlot)
	if atEnd {
		return Position[V]{}
	}
	return Position[V]{owner: n}
}

// Prev returns the position immediately before pos in ascending key
// order. Called on the end position it returns RBegin, matching the
// usual `--end()` container idiom.
func (t *Trie[V]) Prev(pos Position[V]) Position[V] {
	if pos.owner == nil {
		return t.RBegin()
	}
	n, _, atBegin := stepPrev[V](pos.owner, valueSlot)
	if atBegin {
		return Position[V]{}
	}
	return Position[V]{owner: n}
}

// Clone returns a deep, independent copy of t: mutating the clone never
// affects t and vice versa.
func (t *Trie[V]) Clone() *Trie[V] {
	c := &Trie[V]{policy: t.policy, alloc: newAllocator[V]()}
	if t.root == nil {
		return c
	}
	switch r := t.root.(type) {
	case *leafNode[V]:
		c.root = newLeaf(r.label.Clone(), r.val)
	case interior[V]:
		c.root = r.clone(c.alloc)
	}
	c.size = t.size
	return c
}

// Swap exchanges the contents of t and other in place.
func (t *Trie[V]) Swap(other *Trie[V]) {
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
	t.policy, other.policy = other.policy, t.policy
	t.alloc, other.alloc = other.alloc, t.alloc
}
