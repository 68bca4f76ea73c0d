package clist

import (
	"fmt"

	"gopkg.in/karlseguin/intset.v1"
)

// Arena is a growable table of Nodes addressed by Handle. Slot 0 is
// reserved so that Nil never names a real node.
//
// Released handles are kept on a free-list, which is itself a List threaded
// through the arena's own nodes.
//
// An Arena is not thread-safe.
type Arena struct {
	debug     bool
	maxHandle Handle
	nodes []Node
	free  *List
}

func NewArena(configuration *Configuration) *Arena {
	a := &Arena{
		debug:     configuration.debug,
		maxHandle: Handle(configuration.maxHandle),
		nodes: make([]Node, 1, configuration.capacity+1),
	}
	a.free = NewList(a)
	return a
}

// Alloc returns an unlinked node: its next slot names itself. Released
// handles are reused before the table grows.
func (a *Arena) Alloc() Handle {
	if h, ok := a.free.LPop(); ok {
		a.nodes[h].link(h)
		return h
	}
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, Node{next: h})
	return h
}

// Release hands h back to the arena. h must no longer be a member of any
// list.
func (a *Arena) Release(h Handle) {
	a.free.RPush(h)
}

// Claim allocates h specifically: either by taking it off the free-list or
// by growing the table up to it. Slots skipped over while growing go on the
// free-list. Returns false, changing nothing, when h is Nil, above the
// configured maximum, or already allocated.
func (a *Arena) Claim(h Handle) bool {
	if h == Nil || h > a.maxHandle {
		return false
	}
	if int(h) < len(a.nodes) {
		if _, ok := a.free.Remove(h); ok == false {
			return false
		}
	} else {
		for i := Handle(len(a.nodes)); i < h; i++ {
			a.nodes = append(a.nodes, Node{next: i})
			a.free.RPush(i)
		}
		a.nodes = append(a.nodes, Node{})
	}
	a.nodes[h].link(h)
	return true
}

// Claimable reports whether every handle in ids could be claimed: none is
// Nil, above the maximum, or already allocated. Duplicates within ids are
// not considered.
func (a *Arena) Claimable(ids []Handle) error {
	free := intset.NewSized32(uint32(a.free.Len() + 1))
	a.free.Each(func(h Handle) bool {
		free.Set(uint32(h))
		return true
	})
	for i, h := range ids {
		if h == Nil {
			return fmt.Errorf("%w: nil handle at position %d", ErrSnapshot, i)
		}
		if h > a.maxHandle {
			return fmt.Errorf("%w: handle %d above maximum %d", ErrSnapshot, h, a.maxHandle)
		}
		if int(h) < len(a.nodes) && free.Exists(uint32(h)) == false {
			return fmt.Errorf("%w: %d is already allocated", ErrDuplicate, h)
		}
	}
	return nil
}

// Link overwrites h's next slot with target. No validation is done.
func (a *Arena) Link(h Handle, target Handle) {
	a.nodes[h].link(target)
}

// Next returns the handle in h's next slot. For a node which was removed
// from a list the value is stale.
func (a *Arena) Next(h Handle) Handle {
	return a.nodes[h].nextHandle()
}

// Len is the number of slots in the table, allocated or free, excluding
// the reserved Nil slot.
func (a *Arena) Len() int {
	return len(a.nodes) - 1
}

// Free is the number of released handles waiting to be reused.
func (a *Arena) Free() int {
	return a.free.Len()
}

func (a *Arena) owns(h Handle) bool {
	return h != Nil && int(h) < len(a.nodes)
}
