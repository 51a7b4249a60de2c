package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// topPairsLimit and volumeMonths bound the history aggregation report.
const (
	topPairsLimit = 5
	volumeMonths  = 12
)

// historyService manages a user's conversion history.
type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewHistoryService creates a new history service.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo}
}

// ListHistory retrieves one page of the user's history.
func (s *historyService) ListHistory(ctx context.Context, userID string, req dto.HistoryListRequest) (*portsrepo.HistoryPage, error) {
	page, err := s.historyRepo.ListHistoryByUser(ctx, userID, portsrepo.HistoryListOptions{
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return page, nil
}

// HistoryStats aggregates the user's history: total count, the most frequent
// pairs, and monthly volume over the most recent months.
func (s *historyService) HistoryStats(ctx context.Context, userID string) (*domain.HistoryStats, error) {
	total, err := s.historyRepo.CountHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	topPairs, err := s.historyRepo.TopPairs(ctx, userID, topPairsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top pairs: %w", err)
	}

	monthly, err := s.historyRepo.MonthlyVolume(ctx, userID, volumeMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly volume: %w", err)
	}

	return &domain.HistoryStats{
		TotalConversions: total,
		TopPairs:         topPairs,
		MonthlyVolume:    monthly,
	}, nil
}

// AddHistory records a conversion supplied by the client. Derived figures
// missing from the request are recomputed from amount and rate so stored
// records stay internally consistent.
func (s *historyService) AddHistory(ctx context.Context, userID string, req dto.AddHistoryRequest) (*domain.ConversionRecord, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	// Identity pairs are valid history (a conversion may use from == to),
	// so only malformed codes are rejected.
	from, to, err := normalizeCodes(req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}

	converted := req.ConvertedAmount
	if converted.IsZero() {
		converted = req.Amount.Mul(req.Rate)
	}
	finalAmount := req.FinalAmount
	if finalAmount.IsZero() {
		finalAmount = converted.Sub(req.FeeAmount)
	}

	record := domain.ConversionRecord{
		HistoryID:        uuid.NewString(),
		UserID:           userID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Amount:           req.Amount,
		Rate:             req.Rate,
		ConvertedAmount:  converted,
		FeeType:          domain.FeeType(req.FeeType),
		FeeAmount:        req.FeeAmount,
		FinalAmount:      finalAmount,
		ConvertedAt:      time.Now(),
	}

	if err := s.historyRepo.SaveConversion(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save history record", "user_id", userID)
		return nil, fmt.Errorf("failed to save history record: %w", err)
	}

	return &record, nil
}

// DeleteHistory removes one record owned by the user.
func (s *historyService) DeleteHistory(ctx context.Context, userID, historyID string) error {
	if err := s.historyRepo.DeleteConversion(ctx, userID, historyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete history record: %w", err)
	}
	return nil
}

// ClearHistory removes all of the user's records, returning the count.
func (s *historyService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.historyRepo.ClearHistory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return deleted, nil
}
