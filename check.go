package clist

import (
	"errors"
	"fmt"

	"gopkg.in/karlseguin/intset.v1"
)

var (
	ErrCorrupt   = errors.New("clist: corrupt ring")
	ErrDuplicate = errors.New("clist: duplicate handle")
)

// Check walks the ring and verifies that it is a single cycle over
// distinct, allocated nodes which closes back at the head. It costs O(n)
// time and memory and exists for tests and debugging; none of the list
// operations depend on it.
func (l *List) Check() error {
	if l.tail == Nil {
		return nil
	}
	a := l.arena
	if a.owns(l.tail) == false {
		return fmt.Errorf("%w: tail %d is not an arena node", ErrCorrupt, l.tail)
	}
	limit := a.Len()
	visited := intset.NewSized32(uint32(limit))
	head := l.head()
	h := head
	for hops := 0; ; hops++ {
		if hops == limit {
			return fmt.Errorf("%w: no cycle back to head %d after %d hops", ErrCorrupt, head, hops)
		}
		if a.owns(h) == false {
			return fmt.Errorf("%w: link to %d after %d hops", ErrCorrupt, h, hops)
		}
		if visited.Exists(uint32(h)) {
			return fmt.Errorf("%w: %d visited twice before returning to head %d", ErrCorrupt, h, head)
		}
		visited.Set(uint32(h))
		next := a.Next(h)
		if next == head {
			if h != l.tail {
				return fmt.Errorf("%w: ring closes at %d, tail is %d", ErrCorrupt, h, l.tail)
			}
			return nil
		}
		h = next
	}
}
