package services

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	"github.com/fxdeck/currency_converter_app/internal/dto"
)

// HistoryReaderSvc defines read operations for conversion history
type HistoryReaderSvc interface {
	// ListHistory retrieves one page of the user's history.
	ListHistory(ctx context.Context, userID string, req dto.HistoryListRequest) (*portsrepo.HistoryPage, error)

	// HistoryStats aggregates the user's history: total count, top pairs by
	// occurrence, and monthly volume for the most recent 12 months.
	HistoryStats(ctx context.Context, userID string) (*domain.HistoryStats, error)
}

// HistoryWriterSvc defines write operations for conversion history
type HistoryWriterSvc interface {
	// AddHistory records a conversion supplied by the client.
	AddHistory(ctx context.Context, userID string, req dto.AddHistoryRequest) (*domain.ConversionRecord, error)

	// DeleteHistory removes one record owned by the user. ErrNotFound when no
	// such record exists.
	DeleteHistory(ctx context.Context, userID, historyID string) error

	// ClearHistory removes all of the user's records, returning the count.
	ClearHistory(ctx context.Context, userID string) (int64, error)
}

// HistorySvcFacade combines all history-related service interfaces
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
}
