// Package sched is a round-robin run-queue of named tasks.
package sched

import (
	"sync"

	"github.com/kaspar030/clist"
)

type RunQueue struct {
	sync.Mutex
	arena   *clist.Arena
	queue   *clist.List
	handles map[string]clist.Handle
	names   map[clist.Handle]string
}

func New() *RunQueue {
	arena := clist.NewArena(clist.Configure())
	return &RunQueue{
		arena:   arena,
		queue:   clist.NewList(arena),
		handles: make(map[string]clist.Handle),
		names:   make(map[clist.Handle]string),
	}
}

// Add queues name behind every other task. Returns false if the task is
// already queued.
func (q *RunQueue) Add(name string) bool {
	defer q.Unlock()
	q.Lock()
	if _, exists := q.handles[name]; exists {
		return false
	}
	h := q.arena.Alloc()
	q.handles[name] = h
	q.names[h] = name
	q.queue.RPush(h)
	return true
}

// Next returns the task whose turn it is and moves it to the back of the
// queue.
func (q *RunQueue) Next() (string, bool) {
	defer q.Unlock()
	q.Lock()
	h, ok := q.queue.LPeek()
	if ok == false {
		return "", false
	}
	q.queue.LPopRPush()
	return q.names[h], true
}

// Peek returns the task Next would return, without rotating
func (q *RunQueue) Peek() (string, bool) {
	defer q.Unlock()
	q.Lock()
	h, ok := q.queue.LPeek()
	if ok == false {
		return "", false
	}
	return q.names[h], true
}

// Remove dequeues name. O(1) if it is the next task to run, O(n) otherwise.
func (q *RunQueue) Remove(name string) bool {
	defer q.Unlock()
	q.Lock()
	h, exists := q.handles[name]
	if exists == false {
		return false
	}
	q.queue.Remove(h)
	delete(q.handles, name)
	delete(q.names, h)
	q.arena.Release(h)
	return true
}

func (q *RunQueue) Len() int {
	defer q.Unlock()
	q.Lock()
	return len(q.handles)
}

// Names returns the queued tasks in the order they'll run
func (q *RunQueue) Names() []string {
	defer q.Unlock()
	q.Lock()
	names := make([]string, 0, len(q.handles))
	q.queue.Each(func(h clist.Handle) bool {
		names = append(names, q.names[h])
		return true
	})
	return names
}
