package cache

import (
	"testing"

	. "github.com/karlseguin/expect"
	"github.com/kaspar030/clist"
)

type ClockTests struct{}

func Test_Clock(t *testing.T) {
	Expectify(new(ClockTests), t)
}

func (_ ClockTests) EvictsInInsertionOrder() {
	c := newClock()
	entries := testEntries(c, 3)
	Expect(c.evict()).To.Equal(entries[0])
	Expect(c.evict()).To.Equal(entries[1])
	Expect(c.evict()).To.Equal(entries[2])
	Expect(c.evict() == nil).To.Equal(true)
}

func (_ ClockTests) SkipsReferencedEntries() {
	c := newClock()
	entries := testEntries(c, 3)
	entries[0].referenced = 1
	entries[1].referenced = 1
	Expect(c.evict()).To.Equal(entries[2])
	Expect(entries[0].referenced).To.Equal(uint32(0))
	Expect(entries[1].referenced).To.Equal(uint32(0))
	Expect(c.evict()).To.Equal(entries[0])
}

func (_ ClockTests) EvictsWhenEverythingIsReferenced() {
	c := newClock()
	entries := testEntries(c, 2)
	entries[0].referenced = 1
	entries[1].referenced = 1
	Expect(c.evict()).To.Equal(entries[0])
	Expect(c.ring.Len()).To.Equal(1)
}

func (_ ClockTests) RemovesEntries() {
	c := newClock()
	entries := testEntries(c, 3)
	c.remove(entries[1])
	Expect(entries[1].handle).To.Equal(clist.Nil)
	Expect(len(c.entries)).To.Equal(2)
	Expect(c.evict()).To.Equal(entries[0])
	Expect(c.evict()).To.Equal(entries[2])
}

func (_ ClockTests) RemovingAnUnlinkedEntryIsNoop() {
	c := newClock()
	testEntries(c, 1)
	c.remove(&Entry{id: 99})
	Expect(c.ring.Len()).To.Equal(1)
}

func testEntries(c *clock, n int) []*Entry {
	entries := make([]*Entry, n)
	for i := range entries {
		entries[i] = &Entry{id: uint32(i)}
		c.push(entries[i])
	}
	return entries
}
