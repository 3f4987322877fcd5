// Package repository defines the persistence interfaces the services depend
// on. Implementations live in internal/database/postgres; an in-memory fake
// used by the service tests lives alongside them.
package repository

import (
	"context"

	"github.com/pitchside/pitchside/internal/domain"
)

// Ledger is the unit-of-work entry point for player money and inventory.
// All mutations happen inside a LedgerTx so a purchase either fully lands
// or leaves no trace.
type Ledger interface {
	// GetPlayer returns the player's current snapshot without locking.
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// CreatePlayer registers a new player with starting balances.
	CreatePlayer(ctx context.Context, player *domain.Player) error

	// UpdatePlayer persists a player snapshot outside a transaction.
	// Used by attribute adjustments, which touch a single row.
	UpdatePlayer(ctx context.Context, player *domain.Player) error

	// ListTransactions returns the player's most recent transaction records,
	// newest first, capped at limit.
	ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.TransactionRecord, error)

	// BeginTx opens a unit of work for a settlement.
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is a single settlement transaction. GetPlayerForUpdate takes the
// player's row lock, so concurrent settlements for the same player serialize
// and cannot both observe the pre-debit balance.
type LedgerTx interface {
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	InsertTransaction(ctx context.Context, record *domain.TransactionRecord) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
