package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource identifies where an exchange rate observation came from.
type RateSource string

const (
	// SourceLive tags rates fetched from the live spot-rate provider.
	SourceLive RateSource = "exchangerate-api"
	// SourceHistorical tags rates fetched from the historical-series provider.
	SourceHistorical RateSource = "frankfurter"
	// SourceMock tags rates synthesized by the mock generator.
	SourceMock RateSource = "mock"
)

// ExchangeRate is a positive rate between two currencies, tagged with its
// source. ObservedAt is nil for mock rates, which have no observation time.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	Source           RateSource      `json:"source"`
	ObservedAt       *time.Time      `json:"observedAt,omitempty"`
}

// RatePoint is one (date, rate) observation in a historical series.
type RatePoint struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// HistoricalSeries is an ordered sequence of daily rate observations,
// strictly ascending by date, covering every day of its inclusive range.
type HistoricalSeries struct {
	FromCurrencyCode string      `json:"fromCurrency"`
	ToCurrencyCode   string      `json:"toCurrency"`
	Points           []RatePoint `json:"points"`
	Source           RateSource  `json:"source"`
}

// SeriesStats summarizes a historical series for display.
type SeriesStats struct {
	Highest    decimal.Decimal `json:"highest"`
	Lowest     decimal.Decimal `json:"lowest"`
	Average    decimal.Decimal `json:"average"`
	DataPoints int             `json:"dataPoints"`
}

// Stats computes the highest, lowest, and mean rate over the series.
// The zero SeriesStats is returned for an empty series.
func (s HistoricalSeries) Stats() SeriesStats {
	if len(s.Points) == 0 {
		return SeriesStats{}
	}
	highest := s.Points[0].Rate
	lowest := s.Points[0].Rate
	sum := decimal.Zero
	for _, p := range s.Points {
		if p.Rate.GreaterThan(highest) {
			highest = p.Rate
		}
		if p.Rate.LessThan(lowest) {
			lowest = p.Rate
		}
		sum = sum.Add(p.Rate)
	}
	return SeriesStats{
		Highest:    highest,
		Lowest:     lowest,
		Average:    sum.Div(decimal.NewFromInt(int64(len(s.Points)))),
		DataPoints: len(s.Points),
	}
}
