package repositories

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HistoryPage describes one page of a user's conversion history.
type HistoryPage struct {
	Records    []domain.ConversionRecord
	TotalCount int64
}

// HistoryListOptions controls pagination and ordering of history reads.
// SortBy must be one of the columns the repository whitelists; anything else
// falls back to the conversion timestamp.
type HistoryListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// HistoryReader defines read operations for conversion history
type HistoryReader interface {
	// ListHistoryByUser retrieves one page of a user's history.
	ListHistoryByUser(ctx context.Context, userID string, opts HistoryListOptions) (*HistoryPage, error)

	// ListRecentHistory retrieves a user's most recent conversions, newest first.
	ListRecentHistory(ctx context.Context, userID string, limit int) ([]domain.ConversionRecord, error)

	// CountHistoryByUser returns the number of history records a user holds.
	CountHistoryByUser(ctx context.Context, userID string) (int64, error)

	// SumAmountByUser returns the sum of source amounts across a user's history.
	SumAmountByUser(ctx context.Context, userID string) (decimal.Decimal, error)

	// TopPairs groups a user's history by currency pair and returns the most
	// frequent pairs with occurrence count and summed amount.
	TopPairs(ctx context.Context, userID string, limit int) ([]domain.PairStat, error)

	// MonthlyVolume groups a user's history by (year, month) and returns the
	// most recent months ordered descending, with count and summed finalAmount.
	MonthlyVolume(ctx context.Context, userID string, months int) ([]domain.MonthlyVolume, error)
}

// HistoryWriter defines write operations for conversion history
type HistoryWriter interface {
	// SaveConversion persists one conversion record.
	SaveConversion(ctx context.Context, record domain.ConversionRecord) error

	// DeleteConversion removes one record scoped to its owner. ErrNotFound when
	// no row matches.
	DeleteConversion(ctx context.Context, userID, historyID string) error

	// ClearHistory removes all of a user's records and returns how many were deleted.
	ClearHistory(ctx context.Context, userID string) (int64, error)
}

// HistoryRepositoryFacade combines all history-related repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
