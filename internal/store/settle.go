package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/repository"
)

// SettlePurchase runs the settlement for one catalog entry.
//
// The catalog read happens before the transaction opens; prices are
// snapshots, a concurrent reload does not affect an in-flight purchase.
// The player row is locked for the rest, so two purchases for the same
// player serialize and the second one sees the post-debit balance.
func (s *service) SettlePurchase(ctx context.Context, playerID string, kind domain.ItemKind, itemID string) (*SettlementResult, error) {
	log := logger.FromContext(ctx)

	entry, err := s.catalog.GetEntry(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// A mismatched kind means the client asked for something that does not
	// exist under that type, same outcome as an unknown ID.
	if entry.Kind != kind {
		return nil, domain.ErrItemNotFound
	}

	tx, err := s.ledger.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin settlement: %w", err)
	}
	defer repository.SafeRollback(ctx, tx, "SettlePurchase")

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	currency := entry.PriceCurrency()
	if err := player.Balances.Debit(currency, entry.Cost); err != nil {
		return nil, err
	}

	grant(player, entry)

	if err := tx.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to persist settlement for player %s: %w", playerID, err)
	}

	record := domain.TransactionRecord{
		PlayerID:    playerID,
		Kind:        domain.TransactionPurchase,
		Currency:    currency,
		Amount:      -entry.Cost,
		Description: fmt.Sprintf("Purchased %s", entry.Name),
	}
	if err := tx.InsertTransaction(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to record settlement for player %s: %w", playerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit settlement for player %s: %w", playerID, err)
	}

	log.Info("purchase settled",
		slog.String("player_id", playerID),
		slog.String("item_id", entry.ID),
		slog.String("kind", string(entry.Kind)),
		slog.Int("cost", entry.Cost),
		slog.String("currency", string(currency)))

	return &SettlementResult{
		Message: fmt.Sprintf("Purchased %s for %d %s", entry.Name, entry.Cost, currency),
		Record:  record,
	}, nil
}

// grant applies the entry to the player's loadout. Skills and styles are
// idempotent sets, consumables stack.
func grant(player *domain.Player, entry *domain.CatalogEntry) {
	switch entry.Kind {
	case domain.KindSkill:
		player.Loadout.AddSkill(entry.ID)
	case domain.KindStyle:
		player.Loadout.AddStyle(entry.ID)
	case domain.KindItem:
		player.Loadout.AddItem(entry.ID, 1)
	}
}
