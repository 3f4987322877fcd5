package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/store"
)

type mockStoreService struct {
	mock.Mock
}

func (m *mockStoreService) SettlePurchase(ctx context.Context, playerID string, kind domain.ItemKind, itemID string) (*store.SettlementResult, error) {
	args := m.Called(ctx, playerID, kind, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SettlementResult), args.Error(1)
}

func (m *mockStoreService) ListCatalog(ctx context.Context, kind domain.ItemKind) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *mockStoreService) GetTransactions(ctx context.Context, playerID string, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *mockProfileService) AdjustAttribute(ctx context.Context, playerID string, name domain.AttributeName, value int) (*domain.Player, error) {
	args := m.Called(ctx, playerID, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *mockProfileService) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

type mockCatalogAdmin struct {
	mock.Mock
}

func (m *mockCatalogAdmin) Reload(ctx context.Context, seedPath string) (int, error) {
	args := m.Called(ctx, seedPath)
	return args.Int(0), args.Error(1)
}
