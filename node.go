package clist

// Handle identifies a node within an Arena. Handles are stable for the
// lifetime of the arena, regardless of how the underlying table grows.
type Handle uint32

// Nil is never handed out by an Arena and marks the absence of a node.
const Nil Handle = 0

// Node is the intrusive link: a single next slot. Callers don't hold Nodes
// directly, they hold the Handle of the Node they were given by Alloc and
// key their own records by it.
type Node struct {
	next Handle
}

func (n *Node) link(target Handle) {
	n.next = target
}

func (n *Node) nextHandle() Handle {
	return n.next
}
