package list

// Iter is a pair of cursors traversing a list from both ends at once: Next
// walks forward from the front and NextBack walks backward from the tail.
// The two directions may be used independently or interleaved; together they
// yield every element exactly once.
//
// Termination is by convergence: when both cursors reference the same node,
// that node is the last one yielded from either direction and both cursors
// go empty. The comparison is node identity, never value equality, since two
// distinct nodes may hold equal values. An Iter is not restartable; obtain a
// fresh one from Iter to traverse again. Mutating the list while an Iter is
// live is a caller error that the cursors do not detect.
type Iter struct {
	fwd  *Node
	back *Node
}

// Iter returns a cursor pair positioned at the two ends of the list.
func (l *List) Iter() Iter {
	return Iter{fwd: l.first, back: l.tail}
}

// Next yields the value under the forward cursor and advances it, or returns
// false if the forward direction is exhausted.
func (it *Iter) Next() (int64, bool) {
	node := it.fwd
	if node == nil {
		return 0, false
	}
	node.lockRead()
	value := node.value
	next := node.next
	node.unlockRead()
	if node == it.back {
		it.fwd = nil
		it.back = nil
	} else {
		it.fwd = next
	}
	return value, true
}

// NextBack yields the value under the backward cursor and retreats it, or
// returns false if the backward direction is exhausted.
func (it *Iter) NextBack() (int64, bool) {
	node := it.back
	if node == nil {
		return 0, false
	}
	node.lockRead()
	value := node.value
	prev := node.prev
	node.unlockRead()
	if node == it.fwd {
		it.fwd = nil
		it.back = nil
	} else {
		it.back = prev
	}
	return value, true
}

// IterMut is a forward-only cursor yielding the nodes of a list rather than
// their values, for callers that need to update values in place. It carries
// no convergence logic; it simply runs front to back.
type IterMut struct {
	cursor *Node
}

// IterMut returns a mutable cursor positioned at the front of the list.
func (l *List) IterMut() IterMut {
	return IterMut{cursor: l.first}
}

// Next yields the node under the cursor and advances it, or returns false
// once the list is exhausted.
func (it *IterMut) Next() (*Node, bool) {
	node := it.cursor
	if node == nil {
		return nil, false
	}
	node.lockRead()
	it.cursor = node.next
	node.unlockRead()
	return node, true
}
