package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchside/pitchside/internal/domain"
)

// CatalogRepository is the PostgreSQL implementation of repository.Catalog.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) GetEntry(ctx context.Context, id string) (*domain.CatalogEntry, error) {
	var e domain.CatalogEntry
	err := r.pool.QueryRow(ctx, queryGetCatalogEntry, id).Scan(
		&e.ID,
		&e.Kind,
		&e.Name,
		&e.Description,
		&e.Cost,
		&e.Currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog entry %s: %w", id, err)
	}
	return &e, nil
}

func (r *CatalogRepository) ListEntries(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error) {
	rows, err := r.pool.Query(ctx, queryListCatalogEntries, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries of kind %s: %w", kind, err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		var e domain.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &e.Description, &e.Cost, &e.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading catalog rows: %w", err)
	}
	return entries, nil
}

// UpsertEntries writes the seed entries in one transaction so a reload is
// all-or-nothing.
func (r *CatalogRepository) UpsertEntries(ctx context.Context, entries []domain.CatalogEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin catalog sync transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, e := range entries {
		if _, err := tx.Exec(ctx, queryUpsertCatalogEntry,
			e.ID, e.Kind, e.Name, e.Description, e.Cost, e.Currency,
		); err != nil {
			return fmt.Errorf("failed to upsert catalog entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog sync: %w", err)
	}
	return nil
}
