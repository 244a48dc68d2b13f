package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/amigdala/cms-backend/internal/media"
)

// MemoryRepo backs media metadata with a map for tests and local development.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*media.Item
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*media.Item)}
}

func (m *MemoryRepo) Insert(ctx context.Context, item *media.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *item
	m.store[item.ID] = &cp
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*media.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.store[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*media.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*media.Item, 0, len(m.store))
	for _, it := range m.store {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Uploaded.After(out[j].Uploaded) })
	return out, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
