package acttrie

import "sort"

// compressedNode is a branching node with a sorted, sparse child table
// whose capacity is one tier of the active SizePolicy, chosen at
// construction time rather than picked from a handful of fixed-size Go
// struct types: the key and child storage are slices sized to the
// active tier at allocation time so small/medium/fast policies can
// share one node implementation.
type compressedNode[V any] struct {
	base[V]
	cap      int
	count    int
	bytes    []byte
	children []node[V]
}

func (n *compressedNode[V]) initCapacity(capacity int) {
	n.cap = capacity
	n.count = 0
	n.bytes = make([]byte, 0, capacity)
	n.children = make([]node[V], 0, capacity)
}

func (n *compressedNode[V]) reset() {
	var zero V
	n.label = nil
	n.val = zero
	n.hasVal = false
	n.par = nil
	n.pIndex = 0
	n.cap = 0
	n.count = 0
	n.bytes = nil
	n.children = nil
}

func (n *compressedNode[V]) isLeaf() bool    { return false }
func (n *compressedNode[V]) childCount() int { return n.count }
func (n *compressedNode[V]) capacity() int   { return n.cap }

// findEntry does a linear scan for small counts, a binary search
// (stdlib sort.Search) once the sorted table is large enough that it
// pays off.
func (n *compressedNode[V]) findEntry(b byte) (int, bool) {
	if n.count <= 4 {
		for i := 0; i < n.count; i++ {
			if n.bytes[i] == b {
				return i, true
			}
			if n.bytes[i] > b {
				return i, false
			}
		}
		return endSlot, false
	}
	i := sort.Search(n.count, func(i int) bool { return n.bytes[i] >= b })
	if i >= n.count {
		return endSlot, false
	}
	if n.bytes[i] == b {
		return i, true
	}
	return i, false
}

func (n *compressedNode[V]) firstEntry() int { return interiorFirst(n.hasVal, n.count) }
func (n *compressedNode[V]) lastEntry() int  { return interiorLast(n.hasVal, n.count) }
func (n *compressedNode[V]) nextEntry(slot int) int {
	return interiorNext(n.hasVal, n.count, slot)
}
func (n *compressedNode[V]) prevEntry(slot int) int {
	return interiorPrev(n.hasVal, n.count, slot)
}

func (n *compressedNode[V]) entryByte(slot int) byte        { return n.bytes[slot] }
func (n *compressedNode[V]) childAt(slot int) node[V]       { return n.children[slot] }
func (n *compressedNode[V]) setChildAt(slot int, c node[V]) { n.children[slot] = c }

// copyHeaderFrom copies the label/value/parent/parentIndex common
// fields from src into n; used when growing, shrinking, or promoting
// replaces n's identity but must preserve its position in the tree.
func (n *compressedNode[V]) copyHeaderFrom(src node[V]) {
	n.label = src.edgeLabel()
	if src.hasValue() {
		n.setValue(src.value())
	}
	n.par = src.parent()
	n.pIndex = src.parentIndex()
}

func (n *compressedNode[V]) insertChild(alloc *allocator[V], policy *SizePolicy, b byte, child node[V]) (interior[V], int) {
	slot, found := n.findEntry(b)
	if found {
		panic("acttrie: duplicate branching byte inserted")
	}
	idx := slot
	if idx == endSlot {
		idx = n.count
	}

	if n.count < n.cap {
		n.bytes = append(n.bytes, 0)
		n.children = append(n.children, nil)
		copy(n.bytes[idx+1:], n.bytes[idx:n.count])
		copy(n.children[idx+1:], n.children[idx:n.count])
		n.bytes[idx] = b
		n.children[idx] = child
		n.count++
		child.setParent(n)
		child.setParentIndex(b)
		return n, idx
	}

	nextCap := policy.up(n.cap)
	if nextCap == fullCapacity {
		full := alloc.newFull()
		full.copyHeaderFrom(n)
		for i := 0; i < n.count; i++ {
			full.setChildAt(int(n.bytes[i]), n.children[i])
			full.presence.set(n.bytes[i])
			n.children[i].setParent(full)
		}
		full.count = n.count
		alloc.freeCompressed(n)
		return full.insertChild(alloc, policy, b, child)
	}

	grown := alloc.newCompressed(nextCap)
	grown.copyHeaderFrom(n)
	grown.bytes = append(grown.bytes, n.bytes...)
	grown.children = append(grown.children, n.children...)
	grown.count = n.count
	for _, c := range grown.children {
		c.setParent(grown)
	}
	alloc.freeCompressed(n)
	return grown.insertChild(alloc, policy, b, child)
}

func (n *compressedNode[V]) eraseChild(alloc *allocator[V], policy *SizePolicy, slot int) interior[V] {
	copy(n.bytes[slot:], n.bytes[slot+1:n.count])
	copy(n.children[slot:], n.children[slot+1:n.count])
	n.count--
	n.bytes = n.bytes[:n.count]
	n.children = n.children[:n.count]

	smaller := policy.down(n.cap)
	if smaller == n.cap || n.count > policy.downThreshold(n.cap) {
		return n
	}

	shrunk := alloc.newCompressed(smaller)
	shrunk.copyHeaderFrom(n)
	shrunk.bytes = append(shrunk.bytes, n.bytes...)
	shrunk.children = append(shrunk.children, n.children...)
	shrunk.count = n.count
	for _, c := range shrunk.children {
		c.setParent(shrunk)
	}
	alloc.freeCompressed(n)
	return shrunk
}

func (n *compressedNode[V]) clone(alloc *allocator[V]) interior[V] {
	c := alloc.newCompressed(n.cap)
	c.label = n.label.Clone()
	if n.hasVal {
		c.setValue(n.val)
	}
	c.pIndex = n.pIndex
	for i := 0; i < n.count; i++ {
		c.bytes = append(c.bytes, n.bytes[i])
		var child node[V]
		switch ch := n.children[i].(type) {
		case *leafNode[V]:
			child = newLeaf(ch.label.Clone(), ch.val)
		case interior[V]:
			child = ch.clone(alloc)
		}
		child.setParent(c)
		child.setParentIndex(n.bytes[i])
		c.children = append(c.children, child)
	}
	c.count = n.count
	return c
}
