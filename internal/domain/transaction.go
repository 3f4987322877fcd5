package domain

import "time"

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	TransactionPurchase TransactionKind = "purchase"
)

// TransactionRecord is one append-only ledger entry. Amount is negative for
// debits. Records are created exactly once per successful settlement, inside
// the same atomic unit as the balance mutation, and are never mutated or
// deleted afterwards.
type TransactionRecord struct {
	ID          string          `json:"id"`
	PlayerID    string          `json:"player_id"`
	Kind        TransactionKind `json:"kind"`
	Currency    Currency        `json:"currency"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
