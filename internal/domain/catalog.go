package domain

import (
	"fmt"
	"strings"
)

// ItemKind classifies what a catalog entry grants when purchased.
type ItemKind string

const (
	KindSkill ItemKind = "skill"
	KindStyle ItemKind = "style"
	KindItem  ItemKind = "item"
)

// ParseItemKind converts a string to an ItemKind, rejecting unknown kinds.
// A bad kind is a rejected input, not a retryable condition.
func ParseItemKind(s string) (ItemKind, error) {
	switch ItemKind(strings.ToLower(s)) {
	case KindSkill:
		return KindSkill, nil
	case KindStyle:
		return KindStyle, nil
	case KindItem:
		return KindItem, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidItemKind, s)
}

// CatalogEntry is one purchasable listing.
// Entries are immutable for the duration of a purchase evaluation; the
// settlement service reads a snapshot and never writes back.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Cost        int      `json:"cost"`
	Currency    Currency `json:"currency"`
}

// PriceCurrency returns the currency a purchase of this entry is charged
// in. Skills and styles are always priced in gp; only consumable items
// carry their own declared currency.
func (e *CatalogEntry) PriceCurrency() Currency {
	if e.Kind == KindSkill || e.Kind == KindStyle {
		return CurrencyGP
	}
	return e.Currency
}
