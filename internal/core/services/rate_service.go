package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsprov "github.com/fxdeck/currency_converter_app/internal/core/ports/providers"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// maxSeriesDays caps the span of a historical series request.
const maxSeriesDays = 365

// rateService resolves exchange rates with the mock-fallback policy: a
// provider failure degrades to a mock-tagged rate instead of surfacing as an
// error. Identical currency codes are permitted here (an identity conversion
// has rate 1); rejecting them is a bookmark concern.
type rateService struct {
	BaseService
	liveSource       portsprov.LiveRateSource
	historicalSource portsprov.HistoricalRateSource
	mockSource       portsprov.MockRateSource
}

// NewRateService creates a new rate-resolution service.
func NewRateService(live portsprov.LiveRateSource, historical portsprov.HistoricalRateSource, mock portsprov.MockRateSource) portssvc.RateSvcFacade {
	return &rateService{
		liveSource:       live,
		historicalSource: historical,
		mockSource:       mock,
	}
}

func normalizeCodes(fromCurrency, toCurrency string) (string, string, error) {
	if !domain.IsValidCurrencyCode(fromCurrency) || !domain.IsValidCurrencyCode(toCurrency) {
		return "", "", fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrInvalidCurrencyPair)
	}
	return strings.ToUpper(fromCurrency), strings.ToUpper(toCurrency), nil
}

// ResolveLiveRate returns the live spot rate for a pair, degrading to a
// mock-derived rate tagged SourceMock when the provider is unavailable or
// lacks the quote currency.
func (s *rateService) ResolveLiveRate(ctx context.Context, fromCurrency, toCurrency string) (domain.ExchangeRate, error) {
	from, to, err := normalizeCodes(fromCurrency, toCurrency)
	if err != nil {
		return domain.ExchangeRate{}, err
	}

	// Identity pairs need no provider call.
	if from == to {
		return domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			Source:           domain.SourceLive,
		}, nil
	}

	rate, err := s.liveSource.FetchRate(ctx, from, to)
	if err != nil {
		s.LogWarn(ctx, "Live rate provider failed, falling back to mock",
			"from", from, "to", to, "error", err.Error())
		return domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             s.mockSource.Rate(from, to),
			Source:           domain.SourceMock,
		}, nil
	}

	return rate, nil
}

// ResolveHistoricalSeries returns the daily series for an inclusive date
// range, degrading to a synthesized mock series on provider failure. The
// range must run forward and span at most maxSeriesDays.
func (s *rateService) ResolveHistoricalSeries(ctx context.Context, fromCurrency, toCurrency string, start, end time.Time) (domain.HistoricalSeries, error) {
	from, to, err := normalizeCodes(fromCurrency, toCurrency)
	if err != nil {
		return domain.HistoricalSeries{}, err
	}

	if start.After(end) {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: start date must not be after end date", apperrors.ErrValidation)
	}
	if end.Sub(start) > maxSeriesDays*24*time.Hour {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: date range cannot exceed %d days", apperrors.ErrValidation, maxSeriesDays)
	}

	series, err := s.historicalSource.FetchSeries(ctx, from, to, start, end)
	if err != nil {
		s.LogWarn(ctx, "Historical rate provider failed, falling back to mock series",
			"from", from, "to", to, "error", err.Error())
		return s.mockSource.Series(from, to, start, end), nil
	}

	return series, nil
}
