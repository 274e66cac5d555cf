// Package list contains the implementation of a doubly-linked sequence of
// 64-bit integers with constant-time insertion and removal at both ends and
// constant-time concatenation.
//
// The list is built on an asymmetric link discipline: the next link is the
// owning direction, the only path through which a node is reachable from its
// list, while the prev link is a non-owning back reference maintained purely
// to support backward traversal and constant-time removal at the tail. Every
// operation that takes a node out of the chain severs both of the node's
// links, so a detached node never retains the remainder of the chain and each
// node can be reclaimed independently. The two directions are never both
// authoritative; keeping them that way is what lets the chain be torn down
// one link at a time (see Clear) instead of as a single tangled object graph.
//
// Nodes guard their fields with a runtime access check allowing one writer or
// any number of readers at a time. Several operations transiently need two
// handles into the same node (a forward link and a back reference); the guard
// exists to turn a sequencing bug in such an operation into an immediate
// panic rather than silent link corruption. The checked region is always a
// single node, held only while that node's fields are read or written.
//
// Lists are not safe for concurrent use, and the caller must not mutate a
// list while a cursor pair obtained from Iter is live. The package does not
// attempt to detect either misuse.
//
//	l := list.FromSlice([]int64{1, 2, 3})
//	l.PushBack(4)
//	l.PushFront(0)
//
//	for it := l.Iter(); ; {
//		v, ok := it.Next()
//		if !ok {
//			break
//		}
//		...
//	}
package list

// List is a double-ended sequence of int64 values.
//
// The zero value is a valid empty list; New is provided for symmetry with
// FromSlice. first is the owning handle to the chain; tail is a non-owning
// back reference to the last node which makes PushBack, PopBack and backward
// iteration constant-time. tail resolves to a node exactly when first does.
type List struct {
	first *Node
	tail  *Node
	size  int
}

// New returns an empty list. No nodes are allocated.
func New() *List { return new(List) }

// FromSlice builds a list containing the values in order.
//
// All nodes are allocated up front, then adjacent pairs are linked in a
// second pass, so no node is ever observed with only one of its two links
// set. Runs in a single linear walk with no recursion; an empty slice yields
// an empty list.
func FromSlice(values []int64) *List {
	l := New()
	if len(values) == 0 {
		return l
	}
	nodes := make([]*Node, len(values))
	for i, v := range values {
		nodes[i] = &Node{value: v}
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].next = nodes[i+1]
		nodes[i+1].prev = nodes[i]
	}
	l.first = nodes[0]
	l.tail = nodes[len(nodes)-1]
	l.size = len(nodes)
	return l
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return l.size }

// Front returns the value at the front of the list, or false if the list is
// empty. The list is not modified.
func (l *List) Front() (int64, bool) {
	if node := l.first; node != nil {
		return node.Value(), true
	}
	return 0, false
}

// Back returns the value at the back of the list, or false if the list is
// empty. The list is not modified.
func (l *List) Back() (int64, bool) {
	if node := l.tail; node != nil {
		return node.Value(), true
	}
	return 0, false
}

// PushBack inserts value at the back of the list.
func (l *List) PushBack(value int64) {
	node := &Node{value: value}
	if tail := l.tail; tail != nil {
		node.prev = tail
		tail.lockWrite()
		tail.next = node
		tail.unlockWrite()
	} else {
		l.first = node
	}
	l.tail = node
	l.size++
}

// PushFront inserts value at the front of the list.
func (l *List) PushFront(value int64) {
	node := &Node{value: value}
	if first := l.first; first != nil {
		node.next = first
		first.lockWrite()
		first.prev = node
		first.unlockWrite()
	} else {
		l.tail = node
	}
	l.first = node
	l.size++
}

// PopBack removes the value at the back of the list and returns it, or
// returns false if the list was empty.
//
// The removed node leaves with both links severed; popping the last element
// leaves the list identical to a freshly constructed empty list.
func (l *List) PopBack() (int64, bool) {
	node := l.tail
	if node == nil {
		return 0, false
	}
	node.lockRead()
	value := node.value
	prev := node.prev
	node.unlockRead()

	if prev != nil {
		prev.lockWrite()
		prev.next = nil
		prev.unlockWrite()
	} else {
		l.first = nil
	}
	l.tail = prev

	node.lockWrite()
	node.prev = nil
	node.unlockWrite()
	l.size--
	return value, true
}

// PopFront removes the value at the front of the list and returns it, or
// returns false if the list was empty.
func (l *List) PopFront() (int64, bool) {
	node := l.first
	if node == nil {
		return 0, false
	}
	node.lockRead()
	value := node.value
	next := node.next
	node.unlockRead()

	if next != nil {
		next.lockWrite()
		next.prev = nil
		next.unlockWrite()
	} else {
		l.tail = nil
	}
	l.first = next

	node.lockWrite()
	node.next = nil
	node.unlockWrite()
	l.size--
	return value, true
}

// Concat moves every element of other to the back of the list in constant
// time. The nodes themselves move; nothing is copied or reallocated.
//
// other is consumed: it is left empty so that it no longer shares nodes with
// the receiver. Concatenating a list with itself or with an empty list is a
// no-op.
func (l *List) Concat(other *List) {
	if other == l || other.first == nil {
		return
	}
	if tail := l.tail; tail != nil {
		tail.lockWrite()
		tail.next = other.first
		tail.unlockWrite()
		other.first.lockWrite()
		other.first.prev = tail
		other.first.unlockWrite()
	} else {
		l.first = other.first
	}
	l.tail = other.tail
	l.size += other.size
	other.first = nil
	other.tail = nil
	other.size = 0
}

// ToSlice returns the values of the list from front to back.
func (l *List) ToSlice() []int64 {
	values := make([]int64, 0, l.size)
	for it := l.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// ToSliceReverse returns the values of the list from back to front.
func (l *List) ToSliceReverse() []int64 {
	values := make([]int64, 0, l.size)
	for it := l.Iter(); ; {
		v, ok := it.NextBack()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// Clear removes every element, leaving the list identical to a freshly
// constructed empty list.
//
// The chain is unlinked iteratively: at each step the current node gives up
// its successor link before the successor is visited, so by the time any node
// is left behind both of its links are already empty. Stack usage is constant
// regardless of length, and no abandoned node can keep a suffix of the chain
// reachable. Safe for chains of any size.
func (l *List) Clear() {
	node := l.first
	l.first = nil
	l.tail = nil
	l.size = 0
	for node != nil {
		node.lockWrite()
		next := node.next
		node.next = nil
		node.prev = nil
		node.unlockWrite()
		node = next
	}
}
