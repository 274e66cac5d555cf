package list

// Node is a single element of a List.
//
// A node holds its value, the owning link to its successor and a non-owning
// back reference to its predecessor. Either link may be nil: next is nil for
// the last node of a chain and for any detached node, prev is nil for the
// first node and for any detached node. Nodes are only created by the List
// operations; the exported surface of a Node is reading and replacing its
// value, which is what IterMut hands out nodes for.
type Node struct {
	value int64
	prev  *Node
	next  *Node
	locks int32
}

// Value returns the value stored in the node.
func (n *Node) Value() int64 {
	n.lockRead()
	value := n.value
	n.unlockRead()
	return value
}

// SetValue replaces the value stored in the node.
func (n *Node) SetValue(value int64) {
	n.lockWrite()
	n.value = value
	n.unlockWrite()
}

// Nodes allow one writer or any number of readers at a time. The counter is
// positive while readers hold the node and lockWriter while a writer does.
// The lists in this package are single-threaded, so the counter is a plain
// field; it checks operation sequencing, not memory ordering. A failed check
// means an operation took two overlapping write views of one node, which is a
// bug in this package rather than a recoverable condition, so it panics.
const lockWriter = -1

func (n *Node) lockRead() {
	if n.locks == lockWriter {
		panic("list: node is already locked for writing")
	}
	n.locks++
}

func (n *Node) unlockRead() {
	n.locks--
}

func (n *Node) lockWrite() {
	if n.locks != 0 {
		panic("list: node is already locked")
	}
	n.locks = lockWriter
}

func (n *Node) unlockWrite() {
	n.locks = 0
}
