package domain_test

import (
	"testing"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsValidCurrencyCode("USD"))
	assert.True(t, domain.IsValidCurrencyCode("usd"))
	assert.False(t, domain.IsValidCurrencyCode("US"))
	assert.False(t, domain.IsValidCurrencyCode("USDX"))
	assert.False(t, domain.IsValidCurrencyCode("U5D"))
	assert.False(t, domain.IsValidCurrencyCode(""))
}

func TestNewCurrencyPair(t *testing.T) {
	pair, err := domain.NewCurrencyPair("usd", "inr")
	require.NoError(t, err)
	assert.Equal(t, "USD", pair.From)
	assert.Equal(t, "INR", pair.To)
	assert.Equal(t, "USD-INR", pair.String())
}

func TestNewCurrencyPair_RejectsIdentical(t *testing.T) {
	_, err := domain.NewCurrencyPair("USD", "usd")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyPair)
}

func TestNewCurrencyPair_RejectsMalformed(t *testing.T) {
	_, err := domain.NewCurrencyPair("US", "INR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyPair)

	_, err = domain.NewCurrencyPair("USD", "1NR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyPair)
}

func TestCurrencyPairReverse(t *testing.T) {
	pair, err := domain.NewCurrencyPair("EUR", "USD")
	require.NoError(t, err)

	reversed := pair.Reverse()
	assert.Equal(t, "USD", reversed.From)
	assert.Equal(t, "EUR", reversed.To)
}
