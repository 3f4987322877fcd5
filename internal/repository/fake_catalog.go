package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/pitchside/internal/domain"
)

// FakeCatalog is an in-memory Catalog for tests and local development.
type FakeCatalog struct {
	mu      sync.RWMutex
	entries map[string]domain.CatalogEntry
}

// NewFakeCatalog creates an empty FakeCatalog
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{entries: make(map[string]domain.CatalogEntry)}
}

func (f *FakeCatalog) GetEntry(_ context.Context, id string) (*domain.CatalogEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entry, ok := f.entries[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &entry, nil
}

func (f *FakeCatalog) ListEntries(_ context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []domain.CatalogEntry
	for _, e := range f.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeCatalog) UpsertEntries(_ context.Context, entries []domain.CatalogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range entries {
		f.entries[e.ID] = e
	}
	return nil
}
