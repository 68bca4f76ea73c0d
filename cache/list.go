package cache

import (
	"sync/atomic"

	"github.com/kaspar030/clist"
)

// clock is the eviction order: a ring of entries swept with the second
// chance algorithm. Only the cache's worker goroutine touches it.
type clock struct {
	arena   *clist.Arena
	ring    *clist.List
	entries map[clist.Handle]*Entry
}

func newClock() *clock {
	arena := clist.NewArena(clist.Configure().Capacity(1024))
	return &clock{
		arena:   arena,
		ring:    clist.NewList(arena),
		entries: make(map[clist.Handle]*Entry),
	}
}

// push links a new entry just behind the hand
func (c *clock) push(entry *Entry) {
	h := c.arena.Alloc()
	entry.handle = h
	c.entries[h] = entry
	c.ring.RPush(h)
}

func (c *clock) remove(entry *Entry) {
	h := entry.handle
	if h == clist.Nil {
		return
	}
	c.ring.Remove(h)
	c.release(entry)
}

// evict advances the hand until it finds an entry which hasn't been
// referenced since the last sweep, unlinks it and returns it. Referenced
// entries lose their bit and are rotated to the tail. Returns nil when the
// ring is empty.
func (c *clock) evict() *Entry {
	for {
		h, ok := c.ring.LPeek()
		if ok == false {
			return nil
		}
		entry := c.entries[h]
		if atomic.CompareAndSwapUint32(&entry.referenced, 1, 0) {
			c.ring.LPopRPush()
			continue
		}
		c.ring.LPop()
		c.release(entry)
		return entry
	}
}

func (c *clock) release(entry *Entry) {
	delete(c.entries, entry.handle)
	c.arena.Release(entry.handle)
	entry.handle = clist.Nil
}
