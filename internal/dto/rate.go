package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LiveRateResponse is the wire shape of a single spot-rate lookup.
// Timestamp is omitted for mock-derived rates, which carry no observation time.
type LiveRateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	Timestamp    *time.Time      `json:"timestamp,omitempty"`
}

// ToLiveRateResponse maps an exchange rate observation to its wire shape.
func ToLiveRateResponse(rate domain.ExchangeRate) LiveRateResponse {
	return LiveRateResponse{
		FromCurrency: rate.FromCurrencyCode,
		ToCurrency:   rate.ToCurrencyCode,
		Rate:         rate.Rate,
		Source:       string(rate.Source),
		Timestamp:    rate.ObservedAt,
	}
}

// HistoricalRatesRequest defines the query parameters for a historical series.
// Dates are ISO strings (YYYY-MM-DD); the service validates start <= end and a
// range of at most 365 days.
type HistoricalRatesRequest struct {
	FromCurrency string `form:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `form:"toCurrency" binding:"required,currency"`
	StartDate    string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// ChartData is a chart-ready projection of a historical series: one label and
// one point per day.
type ChartData struct {
	Labels []string          `json:"labels"`
	Points []decimal.Decimal `json:"points"`
}

// SeriesStatsResponse is the wire shape of the series summary.
type SeriesStatsResponse struct {
	Highest    decimal.Decimal `json:"highest"`
	Lowest     decimal.Decimal `json:"lowest"`
	Average    decimal.Decimal `json:"average"`
	DataPoints int             `json:"dataPoints"`
}

// HistoricalRatesResponse is the wire shape of a historical-series lookup.
// Warning is set when mock data was substituted for an unavailable provider.
type HistoricalRatesResponse struct {
	FromCurrency string              `json:"fromCurrency"`
	ToCurrency   string              `json:"toCurrency"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	ChartData    ChartData           `json:"chartData"`
	Stats        SeriesStatsResponse `json:"stats"`
	Source       string              `json:"source"`
	Warning      string              `json:"warning,omitempty"`
}

// ToHistoricalRatesResponse maps a series to its chart-ready wire shape.
func ToHistoricalRatesResponse(series domain.HistoricalSeries, startDate, endDate string) HistoricalRatesResponse {
	labels := make([]string, 0, len(series.Points))
	points := make([]decimal.Decimal, 0, len(series.Points))
	for _, p := range series.Points {
		labels = append(labels, p.Date.Format("Jan 2"))
		points = append(points, p.Rate)
	}

	stats := series.Stats()
	resp := HistoricalRatesResponse{
		FromCurrency: series.FromCurrencyCode,
		ToCurrency:   series.ToCurrencyCode,
		StartDate:    startDate,
		EndDate:      endDate,
		ChartData:    ChartData{Labels: labels, Points: points},
		Stats: SeriesStatsResponse{
			Highest:    stats.Highest,
			Lowest:     stats.Lowest,
			Average:    stats.Average,
			DataPoints: stats.DataPoints,
		},
		Source: string(series.Source),
	}
	if series.Source == domain.SourceMock {
		resp.Warning = "Using mock data due to provider unavailability"
	}
	return resp
}
