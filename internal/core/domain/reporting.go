package domain

import "github.com/shopspring/decimal"

// PairStat is one row of the most-used-pairs report: a currency pair with its
// occurrence count and summed source amount. Ordering on equal counts follows
// whatever the store yields; no secondary sort key is defined.
type PairStat struct {
	FromCurrencyCode string          `json:"from"`
	ToCurrencyCode   string          `json:"to"`
	Count            int64           `json:"count"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

// MonthlyVolume is one row of the monthly conversion-volume report.
type MonthlyVolume struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// HistoryStats aggregates a user's conversion history.
type HistoryStats struct {
	TotalConversions int64           `json:"totalConversions"`
	TopPairs         []PairStat      `json:"topPairs"`
	MonthlyVolume    []MonthlyVolume `json:"monthlyVolume"`
}
