package domain_test

import (
	"testing"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePercent(t *testing.T) {
	assert.True(t, domain.FeePercent(domain.FeeNone).IsZero())
	assert.True(t, domain.FeePercent(domain.FeeBank).Equal(decimal.NewFromInt(3)))
	assert.True(t, domain.FeePercent(domain.FeePaypal).Equal(decimal.NewFromInt(4)))
	assert.True(t, domain.FeePercent(domain.FeeWise).Equal(decimal.RequireFromString("0.5")))
	assert.True(t, domain.FeePercent(domain.FeeWesternUnion).Equal(decimal.NewFromInt(5)))

	// Unknown fee types default to zero rather than erroring.
	assert.True(t, domain.FeePercent(domain.FeeType("bitcoin")).IsZero())
}

func TestConvert_BankFee(t *testing.T) {
	amount := decimal.NewFromInt(100)
	rate := decimal.RequireFromString("83.25")

	result, err := domain.Convert(amount, rate, domain.FeeBank)
	require.NoError(t, err)

	assert.True(t, result.ConvertedAmount.Equal(decimal.RequireFromString("8325")), "converted: %s", result.ConvertedAmount)
	assert.True(t, result.FeeAmount.Equal(decimal.RequireFromString("249.75")), "fee: %s", result.FeeAmount)
	assert.True(t, result.FinalAmount.Equal(decimal.RequireFromString("8075.25")), "final: %s", result.FinalAmount)
	assert.Equal(t, domain.FeeBank, result.FeeType)
}

func TestConvert_NoFee(t *testing.T) {
	result, err := domain.Convert(decimal.NewFromInt(50), decimal.RequireFromString("0.92"), domain.FeeNone)
	require.NoError(t, err)

	assert.True(t, result.FeeAmount.IsZero())
	assert.True(t, result.FinalAmount.Equal(result.ConvertedAmount))
}

func TestConvert_FinalEqualsConvertedMinusFee(t *testing.T) {
	amount := decimal.RequireFromString("123.456")
	rate := decimal.RequireFromString("1.0789")

	for _, feeType := range []domain.FeeType{domain.FeeNone, domain.FeeBank, domain.FeePaypal, domain.FeeWise, domain.FeeWesternUnion} {
		result, err := domain.Convert(amount, rate, feeType)
		require.NoError(t, err)
		assert.True(t, result.FinalAmount.Equal(result.ConvertedAmount.Sub(result.FeeAmount)), "fee type %s", feeType)
	}
}

func TestConvert_RejectsNonPositiveAmount(t *testing.T) {
	_, err := domain.Convert(decimal.Zero, decimal.NewFromInt(1), domain.FeeNone)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = domain.Convert(decimal.NewFromInt(-5), decimal.NewFromInt(1), domain.FeeNone)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestConvert_RejectsNonPositiveRate(t *testing.T) {
	_, err := domain.Convert(decimal.NewFromInt(10), decimal.Zero, domain.FeeNone)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
