package rates_test

import (
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/adapters/rates"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSource_Rate_ListedPair(t *testing.T) {
	source := rates.NewMockSource(nil)

	rate := source.Rate("USD", "INR")

	assert.True(t, rate.Equal(decimal.RequireFromString("83.25")), "got %s", rate)
}

func TestMockSource_Rate_ReversePairIsReciprocal(t *testing.T) {
	source := rates.NewMockSource(nil)

	rate := source.Rate("INR", "USD")

	expected := decimal.NewFromInt(1).Div(decimal.RequireFromString("83.25"))
	assert.True(t, rate.Equal(expected), "got %s, want %s", rate, expected)
}

func TestMockSource_Rate_Deterministic(t *testing.T) {
	source := rates.NewMockSource(nil)

	first := source.Rate("USD", "EUR")
	second := source.Rate("USD", "EUR")

	assert.True(t, first.Equal(second))
}

func TestMockSource_Rate_UnlistedPairUsesRandom(t *testing.T) {
	source := rates.NewMockSource(func() float64 { return 0.5 })

	rate := source.Rate("AUD", "CAD")

	// 0.5*10 + 0.1
	assert.True(t, rate.Equal(decimal.RequireFromString("5.1")), "got %s", rate)
}

func TestMockSource_Rate_RandomWithinRange(t *testing.T) {
	source := rates.NewMockSource(nil)

	for i := 0; i < 50; i++ {
		rate := source.Rate("AUD", "CAD")
		assert.True(t, rate.GreaterThanOrEqual(decimal.RequireFromString("0.1")), "got %s", rate)
		assert.True(t, rate.LessThan(decimal.RequireFromString("10.1")), "got %s", rate)
	}
}

func TestMockSource_Series(t *testing.T) {
	// Zero jitter: every point equals the base rate.
	source := rates.NewMockSource(func() float64 { return 0.5 })
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	series := source.Series("USD", "INR", start, end)

	require.Len(t, series.Points, 5)
	assert.Equal(t, "USD", series.FromCurrencyCode)
	assert.Equal(t, "INR", series.ToCurrencyCode)
	assert.Equal(t, domain.SourceMock, series.Source)
	for i, point := range series.Points {
		assert.Equal(t, start.AddDate(0, 0, i), point.Date)
		assert.True(t, point.Rate.Equal(decimal.RequireFromString("83.25")), "day %d: got %s", i, point.Rate)
	}
}

func TestMockSource_Series_SingleDay(t *testing.T) {
	source := rates.NewMockSource(nil)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	series := source.Series("USD", "EUR", day, day)

	require.Len(t, series.Points, 1)
	assert.Equal(t, day, series.Points[0].Date)
}

func TestMockSource_Series_JitterStaysWithinFivePercent(t *testing.T) {
	source := rates.NewMockSource(nil)
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 29)

	series := source.Series("USD", "INR", start, end)

	base := decimal.RequireFromString("83.25")
	low := base.Mul(decimal.RequireFromString("0.95"))
	high := base.Mul(decimal.RequireFromString("1.05"))
	require.Len(t, series.Points, 30)
	for _, point := range series.Points {
		assert.True(t, point.Rate.GreaterThanOrEqual(low), "got %s", point.Rate)
		assert.True(t, point.Rate.LessThanOrEqual(high), "got %s", point.Rate)
	}
}
