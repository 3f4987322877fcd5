package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidItemKind = "invalid item kind"

	// Settlement errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidCurrency   = "invalid currency"

	// Profile errors
	ErrMsgAttributeOutOfRange = "attribute value out of range"
	ErrMsgUnknownAttribute    = "unknown attribute"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Catalog errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidItemKind = errors.New(ErrMsgInvalidItemKind)

	// Settlement errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidCurrency   = errors.New(ErrMsgInvalidCurrency)

	// Profile errors
	ErrAttributeOutOfRange = errors.New(ErrMsgAttributeOutOfRange)
	ErrUnknownAttribute    = errors.New(ErrMsgUnknownAttribute)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// InsufficientFundsError reports an affordability failure along with which
// currency was short, so callers can render a currency-specific message.
// It unwraps to ErrInsufficientFunds.
type InsufficientFundsError struct {
	Currency Currency
	Needed   int
	Balance  int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d %s, have %d", ErrMsgInsufficientFunds, e.Needed, e.Currency, e.Balance)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
