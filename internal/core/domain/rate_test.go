package domain_test

import (
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSeriesStats(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	series := domain.HistoricalSeries{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Points: []domain.RatePoint{
			{Date: day(1), Rate: decimal.RequireFromString("0.92")},
			{Date: day(2), Rate: decimal.RequireFromString("0.95")},
			{Date: day(3), Rate: decimal.RequireFromString("0.89")},
		},
		Source: domain.SourceHistorical,
	}

	stats := series.Stats()

	assert.True(t, stats.Highest.Equal(decimal.RequireFromString("0.95")))
	assert.True(t, stats.Lowest.Equal(decimal.RequireFromString("0.89")))
	assert.True(t, stats.Average.Equal(decimal.RequireFromString("0.92")), "average: %s", stats.Average)
	assert.Equal(t, 3, stats.DataPoints)
}

func TestSeriesStats_Empty(t *testing.T) {
	stats := domain.HistoricalSeries{}.Stats()

	assert.True(t, stats.Highest.IsZero())
	assert.True(t, stats.Lowest.IsZero())
	assert.True(t, stats.Average.IsZero())
	assert.Equal(t, 0, stats.DataPoints)
}
