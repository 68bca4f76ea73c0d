// Package storage persists the order of named lists so they can be rebuilt
// into a fresh arena. Only handles are stored; payloads are the caller's
// business.
package storage

import "github.com/kaspar030/clist"

type Storage interface {
	ListCount() uint32
	Save(name string, list *clist.List) error
	EachList(f func(name string, ids []clist.Handle)) error
	Delete(name string) error
	Close() error
}

// Load rebuilds every stored list in arena. Lists which fail to restore
// are skipped and the first such error is returned once all lists have
// been visited.
func Load(s Storage, arena *clist.Arena) (map[string]*clist.List, error) {
	var restoreErr error
	lists := make(map[string]*clist.List, s.ListCount())
	err := s.EachList(func(name string, ids []clist.Handle) {
		list := clist.NewList(arena)
		if err := list.Restore(ids); err != nil {
			if restoreErr == nil {
				restoreErr = err
			}
			return
		}
		lists[name] = list
	})
	if err != nil {
		return nil, err
	}
	return lists, restoreErr
}
