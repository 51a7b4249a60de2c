package domain_test

import (
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTrendOf(t *testing.T) {
	old := decimal.RequireFromString("83.25")

	assert.Equal(t, domain.TrendUp, domain.TrendOf(old, decimal.RequireFromString("83.26")))
	assert.Equal(t, domain.TrendDown, domain.TrendOf(old, decimal.RequireFromString("83.24")))
	assert.Equal(t, domain.TrendNeutral, domain.TrendOf(old, decimal.RequireFromString("83.25")))
	// Equality across different decimal representations is still neutral.
	assert.Equal(t, domain.TrendNeutral, domain.TrendOf(old, decimal.RequireFromString("83.2500")))
}

func TestApplyRate(t *testing.T) {
	now := time.Now()
	b := domain.Bookmark{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		CurrentRate:      decimal.RequireFromString("83.25"),
		Trend:            domain.TrendNeutral,
		UpdatedAt:        now.Add(-2 * time.Hour),
	}

	b.ApplyRate(decimal.RequireFromString("84.10"), now)

	assert.Equal(t, domain.TrendUp, b.Trend)
	assert.True(t, b.CurrentRate.Equal(decimal.RequireFromString("84.10")))
	assert.Equal(t, now, b.UpdatedAt)

	// A second refresh with the same rate resets the trend to neutral.
	later := now.Add(time.Minute)
	b.ApplyRate(decimal.RequireFromString("84.10"), later)
	assert.Equal(t, domain.TrendNeutral, b.Trend)
	assert.Equal(t, later, b.UpdatedAt)
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	b := domain.Bookmark{UpdatedAt: now.Add(-90 * time.Minute)}

	assert.True(t, b.IsStale(now, time.Hour))
	assert.False(t, b.IsStale(now, 2*time.Hour))

	fresh := domain.Bookmark{UpdatedAt: now}
	assert.False(t, fresh.IsStale(now, time.Hour))
}
