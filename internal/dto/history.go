package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
)

// HistoryListRequest defines the query parameters for paging through history.
type HistoryListRequest struct {
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	SortBy    string `form:"sortBy,default=convertedAt"`
	SortOrder string `form:"sortOrder,default=desc" binding:"oneof=asc desc"`
}

// AddHistoryRequest defines the payload for recording a conversion directly,
// for clients that computed the conversion elsewhere.
type AddHistoryRequest struct {
	FromCurrency    string          `json:"fromCurrency" binding:"required,currency"`
	ToCurrency      string          `json:"toCurrency" binding:"required,currency"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Rate            decimal.Decimal `json:"rate" binding:"required"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	FeeType         string          `json:"feeType"`
	FeeAmount       decimal.Decimal `json:"feeAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount" binding:"required"`
}

// HistoryEntryResponse is the wire shape of one history record: rate at
// 4-decimal and amounts at 2-decimal display precision, timestamp rendered
// relative to now.
type HistoryEntryResponse struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      string `json:"rate"`
	Result    string `json:"result"`
	Timestamp string `json:"timestamp"`
	FeeType   string `json:"feeType"`
	FeeAmount string `json:"feeAmount"`
}

// ToHistoryEntryResponse maps a record to its wire shape.
func ToHistoryEntryResponse(rec *domain.ConversionRecord, now time.Time) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:        rec.HistoryID,
		From:      rec.FromCurrencyCode,
		To:        rec.ToCurrencyCode,
		Amount:    rec.Amount,
		Rate:      utils.FormatRate(rec.Rate),
		Result:    utils.FormatAmount(rec.FinalAmount),
		Timestamp: utils.RelativeTime(rec.ConvertedAt, now),
		FeeType:   string(rec.FeeType),
		FeeAmount: utils.FormatAmount(rec.FeeAmount),
	}
}

// PaginationResponse describes the page window of a list response.
type PaginationResponse struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasMore     bool  `json:"hasMore"`
}

// HistoryListResponse is one page of history entries plus its page window.
type HistoryListResponse struct {
	History    []HistoryEntryResponse `json:"history"`
	Pagination PaginationResponse     `json:"pagination"`
}

// HistoryStatsResponse aggregates a user's conversion history for display.
type HistoryStatsResponse struct {
	TotalConversions int64                   `json:"totalConversions"`
	TopPairs         []PairStatResponse      `json:"topPairs"`
	MonthlyVolume    []MonthlyVolumeResponse `json:"monthlyVolume"`
}

// PairStatResponse is one most-used-pair row with its summed amount at
// display precision.
type PairStatResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"totalAmount"`
}

// MonthlyVolumeResponse is one monthly-volume row.
type MonthlyVolumeResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"totalAmount"`
}

// ToHistoryStatsResponse maps aggregated stats to their wire shape.
func ToHistoryStatsResponse(stats *domain.HistoryStats) HistoryStatsResponse {
	pairs := make([]PairStatResponse, 0, len(stats.TopPairs))
	for _, p := range stats.TopPairs {
		pairs = append(pairs, PairStatResponse{
			From:        p.FromCurrencyCode,
			To:          p.ToCurrencyCode,
			Count:       p.Count,
			TotalAmount: utils.FormatAmount(p.TotalAmount),
		})
	}
	months := make([]MonthlyVolumeResponse, 0, len(stats.MonthlyVolume))
	for _, m := range stats.MonthlyVolume {
		months = append(months, MonthlyVolumeResponse{
			Year:        m.Year,
			Month:       m.Month,
			Count:       m.Count,
			TotalAmount: utils.FormatAmount(m.TotalAmount),
		})
	}
	return HistoryStatsResponse{
		TotalConversions: stats.TotalConversions,
		TopPairs:         pairs,
		MonthlyVolume:    months,
	}
}
