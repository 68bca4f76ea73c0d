package clist

import (
	"fmt"
	"strings"
)

// List is a circular singly-linked list of arena nodes. The list only
// remembers its tail; the head is whatever the tail's next slot names.
//
// Lists never allocate or release nodes, that's up to the caller (see
// Arena.Alloc and Arena.Release). Nodes passed in must not already be in
// a list, and nodes passed to Find or Remove should be members of this
// one. Neither is checked.
//
// Mutating methods require exclusive access to the list. Peek, Find and
// Each may be called concurrently with each other as long as nothing
// mutates the list or its members.
type List struct {
	arena *Arena
	tail  Handle
}

func NewList(arena *Arena) *List {
	return &List{arena: arena}
}

func (l *List) IsEmpty() bool {
	return l.tail == Nil
}

// Inserts e at the beginning of the list
// Complexity: O(1)
func (l *List) LPush(e Handle) {
	a := l.arena
	if l.tail == Nil {
		a.Link(e, e)
		l.tail = e
	} else {
		a.Link(e, l.head())
		a.Link(l.tail, e)
	}
	l.verify()
}

// Removes and returns the first element of the list
// Complexity: O(1)
func (l *List) LPop() (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	head := l.head()
	if head == l.tail {
		l.tail = Nil
	} else {
		l.arena.Link(l.tail, l.arena.Next(head))
	}
	l.verify()
	return head, true
}

// Returns the first element of the list without removing it
// Complexity: O(1)
func (l *List) LPeek() (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	return l.head(), true
}

// Inserts e at the end of the list. Pushing at the head places e right
// after the tail, so moving the tail onto e is all that's left.
// Complexity: O(1)
func (l *List) RPush(e Handle) {
	l.LPush(e)
	l.tail = e
	l.verify()
}

// Removes and returns the last element of the list. There's no backward
// link, so finding the new tail is a scan.
// Complexity: O(n)
func (l *List) RPop() (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	return l.Remove(l.tail)
}

// Returns the last element of the list without removing it
// Complexity: O(1)
func (l *List) RPeek() (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	return l.tail, true
}

// Rotates the list: the first element becomes the last, the second
// becomes the first. No node is touched.
// Complexity: O(1)
func (l *List) LPopRPush() {
	if l.tail != Nil {
		l.tail = l.head()
		l.verify()
	}
}

// Returns the element following e in the ring, if e is in the list.
// Complexity: O(n)
func (l *List) Find(e Handle) (Handle, bool) {
	if _, ok := l.previous(e); !ok {
		return Nil, false
	}
	return l.arena.Next(e), true
}

// Removes and returns e. Removing the head is O(1), anything else needs
// a scan for e's predecessor.
// Complexity: O(n)
func (l *List) Remove(e Handle) (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	if e == l.head() {
		return l.LPop()
	}
	prev, ok := l.previous(e)
	if !ok {
		return Nil, false
	}
	l.arena.Link(prev, l.arena.Next(e))
	if e == l.tail {
		l.tail = prev
	}
	l.verify()
	return e, true
}

// Each calls fn for every element from head to tail, stopping early if fn
// returns false. fn must not mutate the list.
func (l *List) Each(fn func(Handle) bool) {
	if l.tail == Nil {
		return
	}
	a := l.arena
	for h := l.head(); ; h = a.Next(h) {
		if fn(h) == false || h == l.tail {
			return
		}
	}
}

// Len counts the elements. The list keeps no count, so this walks the ring.
// Complexity: O(n)
func (l *List) Len() int {
	n := 0
	l.Each(func(Handle) bool {
		n++
		return true
	})
	return n
}

// Handles returns the elements from head to tail
func (l *List) Handles() []Handle {
	handles := make([]Handle, 0, 8)
	l.Each(func(h Handle) bool {
		handles = append(handles, h)
		return true
	})
	return handles
}

func (l *List) String() string {
	if l.tail == Nil {
		return "List{}"
	}
	sb := new(strings.Builder)
	sb.WriteString("List{")
	l.Each(func(h Handle) bool {
		if h != l.head() {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%d", h)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func (l *List) head() Handle {
	return l.arena.Next(l.tail)
}

// previous scans from the tail for the node whose next slot names e.
func (l *List) previous(e Handle) (Handle, bool) {
	if l.tail == Nil {
		return Nil, false
	}
	a := l.arena
	pos := l.tail
	for {
		next := a.Next(pos)
		if next == e {
			return pos, true
		}
		if next == l.tail {
			return Nil, false
		}
		pos = next
	}
}

func (l *List) verify() {
	if l.arena.debug {
		if err := l.Check(); err != nil {
			panic(err)
		}
	}
}
