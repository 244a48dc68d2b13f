package repository

import (
	"context"
	"sync"

	"github.com/amigdala/cms-backend/internal/content"
)

// MemoryRepo is a simple in-memory repository used for unit tests and local
// development without a database.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*content.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*content.Document)}
}

func (m *MemoryRepo) Upsert(ctx context.Context, doc *content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *doc
	m.store[doc.Section] = &cp
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, section string) (*content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[section]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*content.Document, 0, len(m.store))
	for _, d := range m.store {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}
