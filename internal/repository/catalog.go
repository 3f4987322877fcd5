package repository

import (
	"context"

	"github.com/pitchside/pitchside/internal/domain"
)

// Catalog provides read access to purchasable entries and the sync path
// used when the JSON seed is reloaded.
type Catalog interface {
	// GetEntry returns the entry with the given ID, or domain.ErrItemNotFound.
	GetEntry(ctx context.Context, id string) (*domain.CatalogEntry, error)

	// ListEntries returns all entries of the given kind, sorted by ID.
	ListEntries(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error)

	// UpsertEntries replaces or inserts the given entries in one transaction.
	UpsertEntries(ctx context.Context, entries []domain.CatalogEntry) error
}
