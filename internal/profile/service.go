// Package profile manages player profiles: registration, reads, and the
// guarded attribute write path.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/repository"
)

// Service defines profile operations
type Service interface {
	// GetPlayer returns the player's current profile.
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// AdjustAttribute sets one profile attribute. Values outside the
	// allowed range are rejected and nothing is written.
	AdjustAttribute(ctx context.Context, playerID string, name domain.AttributeName, value int) (*domain.Player, error)

	// RegisterPlayer creates a new player with starting balances and
	// baseline attributes.
	RegisterPlayer(ctx context.Context, username string) (*domain.Player, error)
}

type service struct {
	ledger repository.Ledger
}

// NewService creates a new profile service
func NewService(ledger repository.Ledger) Service {
	return &service{ledger: ledger}
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.ledger.GetPlayer(ctx, playerID)
}

func (s *service) AdjustAttribute(ctx context.Context, playerID string, name domain.AttributeName, value int) (*domain.Player, error) {
	player, err := s.ledger.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	// The range check happens before any write; a rejected value leaves
	// the stored attribute untouched.
	if err := player.Attributes.Set(name, value); err != nil {
		return nil, err
	}

	if err := s.ledger.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to persist attribute change for player %s: %w", playerID, err)
	}

	logger.FromContext(ctx).Info("attribute adjusted",
		slog.String("player_id", playerID),
		slog.String("attribute", string(name)),
		slog.Int("value", value))

	return player, nil
}

func (s *service) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", domain.ErrInvalidInput)
	}

	player := &domain.Player{
		ID:       uuid.NewString(),
		Username: username,
		Balances: domain.Balances{
			GP: StartingGP,
			FC: StartingFC,
		},
		Attributes: domain.Attributes{
			Pace:      BaselineAttributeValue,
			Shooting:  BaselineAttributeValue,
			Passing:   BaselineAttributeValue,
			Dribbling: BaselineAttributeValue,
			Defending: BaselineAttributeValue,
			Physical:  BaselineAttributeValue,
		},
	}

	if err := s.ledger.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to register player %s: %w", username, err)
	}

	logger.FromContext(ctx).Info("player registered",
		slog.String("player_id", player.ID),
		slog.String("username", username))

	return player, nil
}
