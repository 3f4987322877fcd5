package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/pitchside/pitchside/internal/logger"
)

// SafeRollback rolls back a transaction, logging any error except the
// expected ErrTxClosed after a successful commit.
func SafeRollback(ctx context.Context, tx LedgerTx, operation string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("failed to rollback transaction",
			slog.String("operation", operation),
			slog.Any("error", err))
	}
}
