// Package rates implements the outbound exchange-rate sources: the live
// spot-rate provider, the historical-series provider, and the mock generator
// used as their fallback.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultProviderTimeout bounds every provider call.
const DefaultProviderTimeout = 3 * time.Second

// LiveRateClient fetches spot rates from an exchangerate-api style endpoint:
// GET {baseURL}/latest/{base} returns the full rate table for the base
// currency plus an observation date.
type LiveRateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewLiveRateClient creates a client with the given endpoint and timeout.
// A non-positive timeout falls back to DefaultProviderTimeout.
func NewLiveRateClient(baseURL string, timeout time.Duration) *LiveRateClient {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &LiveRateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type liveRateResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate queries the provider keyed by the base currency and looks up the
// quote currency in the returned table.
func (c *LiveRateClient) FetchRate(ctx context.Context, fromCurrency, toCurrency string) (domain.ExchangeRate, error) {
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, fromCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ExchangeRate{}, fmt.Errorf("%w: live provider returned status %d", apperrors.ErrProviderUnavailable, resp.StatusCode)
	}

	var body liveRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: decoding live provider response: %v", apperrors.ErrProviderUnavailable, err)
	}

	rate, ok := body.Rates[toCurrency]
	if !ok {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %s to %s", apperrors.ErrRateNotFound, fromCurrency, toCurrency)
	}

	var observedAt *time.Time
	if t, err := time.Parse("2006-01-02", body.Date); err == nil {
		observedAt = &t
	}

	return domain.ExchangeRate{
		FromCurrencyCode: fromCurrency,
		ToCurrencyCode:   toCurrency,
		Rate:             rate,
		Source:           domain.SourceLive,
		ObservedAt:       observedAt,
	}, nil
}
