// Package providers defines the outbound ports for external exchange-rate
// sources. Callers are expected to catch ErrRateNotFound and
// ErrProviderUnavailable from the live and historical sources and substitute
// mock-derived values; that fallback policy belongs to each call site, not to
// the sources themselves.
package providers

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LiveRateSource fetches the current spot rate for a currency pair from an
// external provider keyed by base currency.
type LiveRateSource interface {
	// FetchRate returns the live rate with its observation date.
	// ErrRateNotFound when the provider responds without the quote currency;
	// ErrProviderUnavailable on network, timeout, or non-2xx failures.
	FetchRate(ctx context.Context, fromCurrency, toCurrency string) (domain.ExchangeRate, error)
}

// HistoricalRateSource fetches a daily rate series for an inclusive date range.
type HistoricalRateSource interface {
	// FetchSeries returns the series sorted ascending by date. A day missing
	// from the provider response fails the whole call; partial series are
	// never returned. ErrProviderUnavailable on network failures.
	FetchSeries(ctx context.Context, fromCurrency, toCurrency string, start, end time.Time) (domain.HistoricalSeries, error)
}

// MockRateSource synthesizes rates for offline and development use. It never
// fails: unlisted pairs get a pseudo-random rate.
type MockRateSource interface {
	// Rate returns the deterministic baseline rate for a known pair, the
	// reciprocal of the reverse pair's entry, or a random fallback.
	Rate(fromCurrency, toCurrency string) decimal.Decimal

	// Series synthesizes one jittered rate per calendar day in [start, end].
	Series(fromCurrency, toCurrency string, start, end time.Time) domain.HistoricalSeries
}
