package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRecord is one persisted conversion in a user's history.
// All monetary values are stored at full precision.
type ConversionRecord struct {
	HistoryID        string          `json:"historyID"`
	UserID           string          `json:"userID"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Amount           decimal.Decimal `json:"amount"`
	Rate             decimal.Decimal `json:"rate"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	FeeType          FeeType         `json:"feeType"`
	FeeAmount        decimal.Decimal `json:"feeAmount"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
	ConvertedAt      time.Time       `json:"convertedAt"`
}
