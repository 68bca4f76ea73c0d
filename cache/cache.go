// Package cache is a size bounded cache evicting with the CLOCK (second
// chance) algorithm. Lookups only flip a bit; the eviction ring is owned by
// a single worker goroutine.
package cache

import (
	"sync/atomic"

	"github.com/kaspar030/clist"
)

const (
	BUCKETS     = 16
	BUCKET_MASK = BUCKETS - 1
)

type Entry struct {
	id         uint32
	data       []byte
	referenced uint32
	// owned by the worker
	handle  clist.Handle
	deleted bool
}

type Cache struct {
	clock       *clock
	maxSize     int
	size        int
	buckets     []*bucket
	deletables  chan *Entry
	promotables chan *Entry
}

func New(maxSize int) *Cache {
	c := &Cache{
		maxSize:     maxSize,
		clock:       newClock(),
		buckets:     make([]*bucket, BUCKETS),
		deletables:  make(chan *Entry, 1024),
		promotables: make(chan *Entry, 1024),
	}
	for i := 0; i < BUCKETS; i++ {
		c.buckets[i] = &bucket{lookup: make(map[uint32]*Entry)}
	}
	go c.worker()
	return c
}

func (c *Cache) Get(id uint32) []byte {
	entry := c.bucket(id).get(id)
	if entry == nil {
		return nil
	}
	atomic.StoreUint32(&entry.referenced, 1)
	return entry.data
}

func (c *Cache) Set(id uint32, data []byte) {
	entry := &Entry{
		id:   id,
		data: data,
	}
	existing := c.bucket(id).set(id, entry)
	if existing != nil {
		c.deletables <- existing
	}
	c.promotables <- entry
}

func (c *Cache) Delete(id uint32) {
	if existing := c.bucket(id).delete(id); existing != nil {
		c.deletables <- existing
	}
}

func (c *Cache) bucket(id uint32) *bucket {
	return c.buckets[id&BUCKET_MASK]
}

func (c *Cache) worker() {
	for {
		select {
		case entry := <-c.promotables:
			if entry.deleted {
				continue
			}
			c.clock.push(entry)
			c.size += len(entry.data)
			if c.size > c.maxSize {
				c.gc()
			}
		case entry := <-c.deletables:
			if entry.handle == clist.Nil {
				// not promoted yet
				entry.deleted = true
				continue
			}
			c.clock.remove(entry)
			c.size -= len(entry.data)
		}
	}
}

func (c *Cache) gc() {
	for i := 0; i < 1000 && c.size > c.maxSize; i++ {
		entry := c.clock.evict()
		if entry == nil {
			return
		}
		c.bucket(entry.id).remove(entry)
		c.size -= len(entry.data)
	}
}
