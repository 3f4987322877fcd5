package domain

import (
	"fmt"
	"strings"
)

// Currency identifies one of the two in-game currencies.
type Currency string

const (
	// CurrencyGP is General Points, earned through regular play.
	CurrencyGP Currency = "gp"
	// CurrencyFC is Football Coins, the premium currency.
	CurrencyFC Currency = "fc"
)

// ParseCurrency converts a string to a Currency, rejecting unknown codes.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToLower(s)) {
	case CurrencyGP:
		return CurrencyGP, nil
	case CurrencyFC:
		return CurrencyFC, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
}

// Balances holds a player's currency balances.
// Invariant: no balance is ever negative; Debit enforces this.
type Balances struct {
	GP int `json:"gp"`
	FC int `json:"fc"`
}

// Amount returns the balance for the given currency.
func (b Balances) Amount(c Currency) int {
	switch c {
	case CurrencyGP:
		return b.GP
	case CurrencyFC:
		return b.FC
	}
	return 0
}

// Debit subtracts amount from the given currency balance.
// It fails without mutating if the balance would go negative.
func (b *Balances) Debit(c Currency, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative debit amount %d", ErrInvalidInput, amount)
	}
	switch c {
	case CurrencyGP:
		if b.GP < amount {
			return &InsufficientFundsError{Currency: c, Needed: amount, Balance: b.GP}
		}
		b.GP -= amount
	case CurrencyFC:
		if b.FC < amount {
			return &InsufficientFundsError{Currency: c, Needed: amount, Balance: b.FC}
		}
		b.FC -= amount
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, c)
	}
	return nil
}

// Credit adds amount to the given currency balance.
func (b *Balances) Credit(c Currency, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative credit amount %d", ErrInvalidInput, amount)
	}
	switch c {
	case CurrencyGP:
		b.GP += amount
	case CurrencyFC:
		b.FC += amount
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, c)
	}
	return nil
}
