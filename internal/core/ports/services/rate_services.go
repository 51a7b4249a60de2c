package services

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
)

// RateReaderSvc resolves exchange rates with the mock-fallback policy applied:
// provider failures surface as mock-tagged results, never as errors.
type RateReaderSvc interface {
	// ResolveLiveRate returns the live spot rate for a pair, or a mock-derived
	// rate tagged SourceMock when the provider is unavailable or lacks the
	// quote currency. Fails only on malformed currency codes.
	ResolveLiveRate(ctx context.Context, fromCurrency, toCurrency string) (domain.ExchangeRate, error)

	// ResolveHistoricalSeries returns the daily series for an inclusive date
	// range, falling back to a synthesized mock series on provider failure.
	// Fails on invalid ranges (start after end, or spanning more than 365
	// days).
	ResolveHistoricalSeries(ctx context.Context, fromCurrency, toCurrency string, start, end time.Time) (domain.HistoricalSeries, error)
}

// RateSvcFacade combines all rate-resolution service interfaces
type RateSvcFacade interface {
	RateReaderSvc
}
