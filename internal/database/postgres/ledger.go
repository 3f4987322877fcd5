// Package postgres implements the repository interfaces against PostgreSQL
// using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/repository"
)

// LedgerRepository is the PostgreSQL implementation of repository.Ledger.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return scanPlayer(r.pool.QueryRow(ctx, queryGetPlayer, playerID))
}

func (r *LedgerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	_, err := r.pool.Exec(ctx, queryInsertPlayer,
		player.ID,
		player.Username,
		player.Balances.GP,
		player.Balances.FC,
		player.Loadout,
		player.Attributes,
	)
	if err != nil {
		return fmt.Errorf("failed to create player %s: %w", player.ID, err)
	}
	return nil
}

func (r *LedgerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	tag, err := r.pool.Exec(ctx, queryUpdatePlayer,
		player.Balances.GP,
		player.Balances.FC,
		player.Loadout,
		player.Attributes,
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, queryListTransactions, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for player %s: %w", playerID, err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.PlayerID,
			&rec.Kind,
			&rec.Currency,
			&rec.Amount,
			&rec.Description,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return records, nil
}

// BeginTx opens a settlement transaction.
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx implements repository.LedgerTx on top of a pgx transaction.
type ledgerTx struct {
	tx pgx.Tx
}

// GetPlayerForUpdate locks the player row for the duration of the
// transaction. A second settlement for the same player blocks here until
// the first commits or rolls back.
func (t *ledgerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return scanPlayer(t.tx.QueryRow(ctx, queryGetPlayerForUpdate, playerID))
}

func (t *ledgerTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	tag, err := t.tx.Exec(ctx, queryUpdatePlayer,
		player.Balances.GP,
		player.Balances.FC,
		player.Loadout,
		player.Attributes,
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (t *ledgerTx) InsertTransaction(ctx context.Context, record *domain.TransactionRecord) error {
	err := t.tx.QueryRow(ctx, queryInsertTransaction,
		record.PlayerID,
		record.Kind,
		record.Currency,
		record.Amount,
		record.Description,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction for player %s: %w", record.PlayerID, err)
	}
	return nil
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// scanPlayer maps a player row, translating pgx.ErrNoRows into the domain
// sentinel so callers never see driver errors.
func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Balances.GP,
		&p.Balances.FC,
		&p.Loadout,
		&p.Attributes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player row: %w", err)
	}
	return &p, nil
}
