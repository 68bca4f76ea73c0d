package clist

import (
	"errors"
	"testing"

	. "github.com/karlseguin/expect"
)

type CheckTests struct{}

func Test_Check(t *testing.T) {
	Expectify(new(CheckTests), t)
}

func (_ CheckTests) EmptyListIsValid() {
	_, l := uncheckedList()
	Expect(l.Check()).To.Equal(nil)
}

func (_ CheckTests) WellFormedRing() {
	a, l := uncheckedList()
	for _, h := range allocN(a, 6) {
		l.RPush(h)
	}
	l.LPopRPush()
	l.RPop()
	Expect(l.Check()).To.Equal(nil)
}

func (_ CheckTests) DetectsSubCycle() {
	a, l := uncheckedList()
	handles := allocN(a, 4)
	for _, h := range handles {
		l.RPush(h)
	}
	a.Link(handles[2], handles[1])
	Expect(errors.Is(l.Check(), ErrCorrupt)).To.Equal(true)
}

func (_ CheckTests) DetectsRingClosingBeforeTail() {
	a, l := uncheckedList()
	handles := allocN(a, 4)
	for _, h := range handles {
		l.RPush(h)
	}
	a.Link(handles[1], handles[0])
	Expect(errors.Is(l.Check(), ErrCorrupt)).To.Equal(true)
}

func (_ CheckTests) DetectsLinkOutsideArena() {
	a, l := uncheckedList()
	handles := allocN(a, 2)
	for _, h := range handles {
		l.RPush(h)
	}
	a.Link(handles[0], Handle(77))
	Expect(errors.Is(l.Check(), ErrCorrupt)).To.Equal(true)
}

func (_ CheckTests) DebugModePanicsOnDoubleInsert() {
	a, l := testList()
	x, y := a.Alloc(), a.Alloc()
	l.RPush(x)
	l.RPush(y)
	defer func() {
		Expect(recover() != nil).To.Equal(true)
	}()
	l.RPush(x)
}

func uncheckedList() (*Arena, *List) {
	a := NewArena(Configure())
	return a, NewList(a)
}
