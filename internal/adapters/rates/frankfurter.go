package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// HistoricalRateClient fetches daily rate series from a frankfurter style
// endpoint: GET {baseURL}/{start}..{end}?base=X&symbols=Y returns a mapping
// from date string to per-currency rate.
type HistoricalRateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHistoricalRateClient creates a client with the given endpoint and
// timeout. A non-positive timeout falls back to DefaultProviderTimeout.
func NewHistoricalRateClient(baseURL string, timeout time.Duration) *HistoricalRateClient {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &HistoricalRateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type historicalRateResponse struct {
	Base  string                                `json:"base"`
	Rates map[string]map[string]decimal.Decimal `json:"rates"`
}

// FetchSeries queries the provider for the inclusive [start, end] range and
// converts the response into a series sorted ascending by date. A returned day
// missing the quote currency fails the whole call; partial series are never
// returned.
func (c *HistoricalRateClient) FetchSeries(ctx context.Context, fromCurrency, toCurrency string, start, end time.Time) (domain.HistoricalSeries, error) {
	endpoint := fmt.Sprintf("%s/%s..%s", c.baseURL, start.Format(dateLayout), end.Format(dateLayout))
	query := url.Values{}
	query.Set("base", fromCurrency)
	query.Set("symbols", toCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: historical provider returned status %d", apperrors.ErrProviderUnavailable, resp.StatusCode)
	}

	var body historicalRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.HistoricalSeries{}, fmt.Errorf("%w: decoding historical provider response: %v", apperrors.ErrProviderUnavailable, err)
	}

	points := make([]domain.RatePoint, 0, len(body.Rates))
	for dateStr, dayRates := range body.Rates {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return domain.HistoricalSeries{}, fmt.Errorf("%w: unparseable date %q in historical response", apperrors.ErrProviderUnavailable, dateStr)
		}
		rate, ok := dayRates[toCurrency]
		if !ok {
			return domain.HistoricalSeries{}, fmt.Errorf("%w: %s missing for %s", apperrors.ErrRateNotFound, toCurrency, dateStr)
		}
		points = append(points, domain.RatePoint{Date: date, Rate: rate})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return domain.HistoricalSeries{
		FromCurrencyCode: fromCurrency,
		ToCurrencyCode:   toCurrency,
		Points:           points,
		Source:           domain.SourceHistorical,
	}, nil
}
