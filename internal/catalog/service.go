package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/repository"
)

// Cache sizing. Entries are tiny, the TTL only bounds staleness after an
// admin reload on another instance.
const (
	cacheSize = 512
	cacheTTL  = 5 * time.Minute
)

// Service serves catalog reads through an expiring LRU cache in front of
// the repository.
type Service struct {
	repo  repository.Catalog
	cache *expirable.LRU[string, *domain.CatalogEntry]
}

// NewService creates a new catalog Service
func NewService(repo repository.Catalog) *Service {
	return &Service{
		repo:  repo,
		cache: expirable.NewLRU[string, *domain.CatalogEntry](cacheSize, nil, cacheTTL),
	}
}

// GetEntry returns the catalog entry with the given ID.
func (s *Service) GetEntry(ctx context.Context, id string) (*domain.CatalogEntry, error) {
	if entry, ok := s.cache.Get(id); ok {
		return entry, nil
	}

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, entry)
	return entry, nil
}

// ListEntries returns all entries of the given kind. Listings are not
// cached, they only back the browse endpoint.
func (s *Service) ListEntries(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error) {
	return s.repo.ListEntries(ctx, kind)
}

// Reload re-reads the seed file, upserts it, and drops the cache so stale
// prices cannot be served afterwards.
func (s *Service) Reload(ctx context.Context, seedPath string) (int, error) {
	count, err := SyncToDatabase(ctx, seedPath, s.repo)
	if err != nil {
		return 0, fmt.Errorf("catalog reload failed: %w", err)
	}
	s.cache.Purge()
	return count, nil
}
