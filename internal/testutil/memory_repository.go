// Package testutil provides in-memory fakes for tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/storage"
)

// MemoryRepository implements storage.Repository in memory and records saves for tests.
type MemoryRepository struct {
	mu       sync.Mutex
	elements map[string]element.Element
	saved    []element.Element
	deleted  []string
	err      error
}

// Ensure MemoryRepository implements the interface.
var _ storage.Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{elements: make(map[string]element.Element)}
}

// FailWith makes every later call return err.
func (m *MemoryRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Save records and stores el.
func (m *MemoryRepository) Save(_ context.Context, el element.Element) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.elements[el.ID] = el.Clone()
	m.saved = append(m.saved, el.Clone())
	return nil
}

// List returns stored elements ordered by z order.
func (m *MemoryRepository) List(_ context.Context) ([]element.Element, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]element.Element, 0, len(m.elements))
	for _, el := range m.elements {
		out = append(out, el.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ZOrder != out[j].ZOrder {
			return out[i].ZOrder < out[j].ZOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes id or returns storage.ErrNotFound.
func (m *MemoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.elements[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	delete(m.elements, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// Saved returns every element passed to Save, in call order.
func (m *MemoryRepository) Saved() []element.Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]element.Element, len(m.saved))
	copy(out, m.saved)
	return out
}

// Deleted returns every id removed, in call order.
func (m *MemoryRepository) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
