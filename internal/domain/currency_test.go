package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input   string
		want    Currency
		wantErr bool
	}{
		{"gp", CurrencyGP, false},
		{"GP", CurrencyGP, false},
		{"fc", CurrencyFC, false},
		{"Fc", CurrencyFC, false},
		{"usd", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCurrency(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalances_Debit(t *testing.T) {
	b := Balances{GP: 100, FC: 10}

	require.NoError(t, b.Debit(CurrencyGP, 60))
	assert.Equal(t, 40, b.GP)
	assert.Equal(t, 10, b.FC)

	require.NoError(t, b.Debit(CurrencyFC, 10))
	assert.Equal(t, 0, b.FC)
}

func TestBalances_DebitInsufficient(t *testing.T) {
	b := Balances{GP: 50}

	err := b.Debit(CurrencyGP, 51)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	var ife *InsufficientFundsError
	require.True(t, errors.As(err, &ife))
	assert.Equal(t, CurrencyGP, ife.Currency)
	assert.Equal(t, 51, ife.Needed)
	assert.Equal(t, 50, ife.Balance)

	// No mutation on failure
	assert.Equal(t, 50, b.GP)
}

func TestBalances_DebitExactBalance(t *testing.T) {
	b := Balances{FC: 25}

	require.NoError(t, b.Debit(CurrencyFC, 25))
	assert.Equal(t, 0, b.FC)
}

func TestBalances_DebitNegativeAmount(t *testing.T) {
	b := Balances{GP: 100}

	err := b.Debit(CurrencyGP, -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 100, b.GP)
}

func TestBalances_Amount(t *testing.T) {
	b := Balances{GP: 7, FC: 3}
	assert.Equal(t, 7, b.Amount(CurrencyGP))
	assert.Equal(t, 3, b.Amount(CurrencyFC))
	assert.Equal(t, 0, b.Amount(Currency("bogus")))
}
