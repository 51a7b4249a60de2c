package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the payload for a currency conversion.
// SaveHistory defaults to true when omitted.
type ConvertRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currency"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FeeType      string          `json:"feeType"`
	SaveHistory  *bool           `json:"saveHistory"`
}

// WantsHistory reports whether the conversion should be recorded,
// defaulting to true.
func (r ConvertRequest) WantsHistory() bool {
	return r.SaveHistory == nil || *r.SaveHistory
}

// ConvertResponse is the wire shape of a conversion result. Amounts are
// rounded to 2 decimals for display; the rate is passed through at full
// precision.
type ConvertResponse struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount string          `json:"convertedAmount"`
	FeeType         string          `json:"feeType"`
	FeePercentage   decimal.Decimal `json:"feePercentage"`
	FeeAmount       string          `json:"feeAmount"`
	FinalAmount     string          `json:"finalAmount"`
	Source          string          `json:"source"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ToConvertResponse maps a conversion outcome to its wire shape.
func ToConvertResponse(outcome *domain.ConversionOutcome) ConvertResponse {
	return ConvertResponse{
		FromCurrency:    outcome.Pair.From,
		ToCurrency:      outcome.Pair.To,
		Amount:          outcome.Result.Amount,
		Rate:            outcome.Result.Rate,
		ConvertedAmount: utils.FormatAmount(outcome.Result.ConvertedAmount),
		FeeType:         string(outcome.Result.FeeType),
		FeePercentage:   outcome.Result.FeePercent,
		FeeAmount:       utils.FormatAmount(outcome.Result.FeeAmount),
		FinalAmount:     utils.FormatAmount(outcome.Result.FinalAmount),
		Source:          string(outcome.Source),
		Timestamp:       outcome.ConvertedAt,
	}
}
