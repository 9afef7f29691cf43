package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry struct {
	key     string
	value   string
	expires time.Time
}

// Memory is an LRU store bounded by entry count and age.
type Memory struct {
	mu         sync.Mutex
	items      map[string]*list.Element
	order      *list.List
	maxEntries int
	ttl        time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: 1024,
		ttl:        ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return "", ErrMiss
	}

	e := el.Value.(*entry)
	if m.ttl > 0 && time.Now().After(e.expires) {
		m.order.Remove(el)
		delete(m.items, key)
		return "", ErrMiss
	}

	m.order.MoveToFront(el)
	return e.value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expires := time.Now().Add(m.ttl)

	if el, ok := m.items[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		e.expires = expires
		m.order.MoveToFront(el)
		return nil
	}

	m.items[key] = m.order.PushFront(&entry{key: key, value: value, expires: expires})

	for m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(*entry).key)
	}

	return nil
}
