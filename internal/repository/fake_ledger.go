package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pitchside/pitchside/internal/concurrency"
	"github.com/pitchside/pitchside/internal/domain"
)

// FakeLedger is an in-memory Ledger for tests and local development.
// It reproduces the Postgres locking discipline: GetPlayerForUpdate holds
// the player's named lock until the transaction commits or rolls back, so
// concurrent settlements interleave the same way they do against the real
// database.
type FakeLedger struct {
	mu           sync.RWMutex
	players      map[string]*domain.Player
	transactions map[string][]domain.TransactionRecord
	locks        *concurrency.LockManager
}

// NewFakeLedger creates an empty FakeLedger
func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		players:      make(map[string]*domain.Player),
		transactions: make(map[string][]domain.TransactionRecord),
		locks:        concurrency.NewLockManager(),
	}
}

func (f *FakeLedger) GetPlayer(_ context.Context, playerID string) (*domain.Player, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	player, ok := f.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (f *FakeLedger) CreatePlayer(_ context.Context, player *domain.Player) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.players[player.ID] = player.Clone()
	return nil
}

func (f *FakeLedger) UpdatePlayer(_ context.Context, player *domain.Player) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	f.players[player.ID] = player.Clone()
	return nil
}

func (f *FakeLedger) ListTransactions(_ context.Context, playerID string, limit int) ([]domain.TransactionRecord, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	records := append([]domain.TransactionRecord(nil), f.transactions[playerID]...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (f *FakeLedger) BeginTx(_ context.Context) (LedgerTx, error) {
	return &fakeLedgerTx{ledger: f}, nil
}

// TransactionCount returns how many records exist for the player.
func (f *FakeLedger) TransactionCount(playerID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.transactions[playerID])
}

type fakeLedgerTx struct {
	ledger        *FakeLedger
	rowLock       *sync.Mutex
	stagedPlayer  *domain.Player
	stagedRecords []domain.TransactionRecord
	closed        bool
}

func (t *fakeLedgerTx) GetPlayerForUpdate(_ context.Context, playerID string) (*domain.Player, error) {
	lock := t.ledger.locks.GetLock(playerID)
	lock.Lock()

	t.ledger.mu.RLock()
	player, ok := t.ledger.players[playerID]
	t.ledger.mu.RUnlock()

	if !ok {
		lock.Unlock()
		return nil, domain.ErrPlayerNotFound
	}

	t.rowLock = lock
	return player.Clone(), nil
}

func (t *fakeLedgerTx) UpdatePlayer(_ context.Context, player *domain.Player) error {
	t.stagedPlayer = player.Clone()
	return nil
}

func (t *fakeLedgerTx) InsertTransaction(_ context.Context, record *domain.TransactionRecord) error {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	t.stagedRecords = append(t.stagedRecords, *record)
	return nil
}

func (t *fakeLedgerTx) Commit(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}

	t.ledger.mu.Lock()
	if t.stagedPlayer != nil {
		t.ledger.players[t.stagedPlayer.ID] = t.stagedPlayer
	}
	for _, rec := range t.stagedRecords {
		t.ledger.transactions[rec.PlayerID] = append(t.ledger.transactions[rec.PlayerID], rec)
	}
	t.ledger.mu.Unlock()

	t.release()
	return nil
}

func (t *fakeLedgerTx) Rollback(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.stagedPlayer = nil
	t.stagedRecords = nil
	t.release()
	return nil
}

func (t *fakeLedgerTx) release() {
	t.closed = true
	if t.rowLock != nil {
		t.rowLock.Unlock()
		t.rowLock = nil
	}
}
