// Package store implements purchase settlement: the atomic debit of a
// player's balance, the matching inventory grant, and the transaction
// record that proves it happened.
package store

import (
	"context"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/repository"
)

// CatalogReader is the slice of the catalog the store needs.
type CatalogReader interface {
	GetEntry(ctx context.Context, id string) (*domain.CatalogEntry, error)
	ListEntries(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error)
}

// Service defines store operations
type Service interface {
	// SettlePurchase atomically charges the player for the catalog entry
	// and grants it. Either every effect lands or none do.
	SettlePurchase(ctx context.Context, playerID string, kind domain.ItemKind, itemID string) (*SettlementResult, error)

	// ListCatalog returns the purchasable entries of the given kind.
	ListCatalog(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error)

	// GetTransactions returns the player's most recent records, newest first.
	GetTransactions(ctx context.Context, playerID string, limit int) ([]domain.TransactionRecord, error)
}

// SettlementResult describes a completed purchase.
type SettlementResult struct {
	Message string
	Record  domain.TransactionRecord
}

type service struct {
	ledger  repository.Ledger
	catalog CatalogReader
}

// NewService creates a new store service
func NewService(ledger repository.Ledger, catalog CatalogReader) Service {
	return &service{
		ledger:  ledger,
		catalog: catalog,
	}
}

func (s *service) ListCatalog(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error) {
	return s.catalog.ListEntries(ctx, kind)
}

func (s *service) GetTransactions(ctx context.Context, playerID string, limit int) ([]domain.TransactionRecord, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	// Listing for an unknown player should 404, not return an empty page.
	if _, err := s.ledger.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	return s.ledger.ListTransactions(ctx, playerID, limit)
}
