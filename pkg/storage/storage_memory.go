package storage

import (
	"fmt"
	"net/url"
	"sort"
	"sync"
)

func init() {
	Register(`memory`, func(_ *url.URL) (Storager, error) { return NewMemory(), nil })
}

func NewMemory() Storager {
	return &storageMemory{records: map[string]Record{}}
}

type storageMemory struct {
	mu      sync.RWMutex
	records map[string]Record
}

func (e *storageMemory) Save(rec Record) error {
	e.mu.Lock()
	e.records[rec.Name] = rec
	e.mu.Unlock()
	return nil
}

func (e *storageMemory) Get(name string) (Record, error) {
	e.mu.RLock()
	rec, ok := e.records[name]
	e.mu.RUnlock()
	if !ok {
		return rec, fmt.Errorf(`%w: %s`, ErrNotFound, name)
	}
	return rec, nil
}

// List returns the newest records first. A limit <= 0 returns all of them.
func (e *storageMemory) List(limit int) ([]Record, error) {
	e.mu.RLock()
	list := make([]Record, 0, len(e.records))
	for _, rec := range e.records {
		list = append(list, rec)
	}
	e.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Created.Equal(list[j].Created) {
			return list[i].Name < list[j].Name
		}
		return list[i].Created.After(list[j].Created)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (e *storageMemory) Delete(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.records[name]; !ok {
		return fmt.Errorf(`%w: %s`, ErrNotFound, name)
	}
	delete(e.records, name)
	return nil
}

func (e *storageMemory) Close() {
}
