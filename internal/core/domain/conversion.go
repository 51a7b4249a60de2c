package domain

import (
	"fmt"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FeeType names a payment-method fee preset.
type FeeType string

const (
	FeeNone         FeeType = "none"
	FeeBank         FeeType = "bank"
	FeePaypal       FeeType = "paypal"
	FeeWise         FeeType = "wise"
	FeeWesternUnion FeeType = "western_union"
)

// feeSchedule maps each fee type to its percentage of the converted amount.
var feeSchedule = map[FeeType]decimal.Decimal{
	FeeNone:         decimal.Zero,
	FeeBank:         decimal.NewFromInt(3),
	FeePaypal:       decimal.NewFromInt(4),
	FeeWise:         decimal.RequireFromString("0.5"),
	FeeWesternUnion: decimal.NewFromInt(5),
}

// FeePercent returns the fee percentage for a fee type. Unknown fee types
// default to zero rather than being rejected.
func FeePercent(feeType FeeType) decimal.Decimal {
	if pct, ok := feeSchedule[feeType]; ok {
		return pct
	}
	return decimal.Zero
}

// ConversionResult holds every figure of a single conversion at full
// precision. Rounding to display precision is a DTO concern; these values are
// persisted as-is so finalAmount always equals convertedAmount minus feeAmount
// exactly.
type ConversionResult struct {
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	FeeType         FeeType         `json:"feeType"`
	FeePercent      decimal.Decimal `json:"feePercentage"`
	FeeAmount       decimal.Decimal `json:"feeAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
}

// ConversionOutcome pairs a computed conversion with the rate's provenance.
type ConversionOutcome struct {
	Pair        CurrencyPair
	Result      ConversionResult
	Source      RateSource
	ConvertedAt time.Time
}

// Convert computes the converted amount, fee, and final amount for a given
// amount, rate, and fee type. The amount and rate must both be positive; the
// fee type is never rejected, only defaulted to zero.
func Convert(amount, rate decimal.Decimal, feeType FeeType) (ConversionResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ConversionResult{}, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return ConversionResult{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	converted := amount.Mul(rate)
	feePercent := FeePercent(feeType)
	feeAmount := converted.Mul(feePercent).Div(decimal.NewFromInt(100))

	return ConversionResult{
		Amount:          amount,
		Rate:            rate,
		ConvertedAmount: converted,
		FeeType:         feeType,
		FeePercent:      feePercent,
		FeeAmount:       feeAmount,
		FinalAmount:     converted.Sub(feeAmount),
	}, nil
}
