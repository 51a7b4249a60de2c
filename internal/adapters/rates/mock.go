package rates

import (
	"math/rand"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// baseRates is the deterministic baseline table. Pairs outside this table and
// its reverses fall through to the random branch.
var baseRates = map[string]decimal.Decimal{
	"USD-INR": decimal.RequireFromString("83.25"),
	"USD-EUR": decimal.RequireFromString("0.92"),
	"USD-GBP": decimal.RequireFromString("0.79"),
	"USD-JPY": decimal.RequireFromString("149.50"),
	"EUR-USD": decimal.RequireFromString("1.08"),
	"GBP-USD": decimal.RequireFromString("1.27"),
	"JPY-USD": decimal.RequireFromString("0.0067"),
}

// MockSource synthesizes exchange rates for offline and development use.
// The random source is injected so tests can pin the unlisted-pair branch and
// series jitter; there is no package-level state.
type MockSource struct {
	random func() float64
}

// NewMockSource creates a mock source. A nil random function gets a
// time-seeded default.
func NewMockSource(random func() float64) *MockSource {
	if random == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		random = rng.Float64
	}
	return &MockSource{random: random}
}

// Rate returns the baseline rate for a listed pair, the reciprocal of the
// reverse pair's entry, or a random value in [0.1, 10.1). Only the listed
// pairs and their reverses are deterministic.
func (m *MockSource) Rate(fromCurrency, toCurrency string) decimal.Decimal {
	if rate, ok := baseRates[fromCurrency+"-"+toCurrency]; ok {
		return rate
	}
	if reverse, ok := baseRates[toCurrency+"-"+fromCurrency]; ok {
		return decimal.NewFromInt(1).Div(reverse)
	}
	return decimal.NewFromFloat(m.random()*10 + 0.1)
}

// Series synthesizes one rate per calendar day in the inclusive [start, end]
// range, applying independent ±5% jitter per day. There is deliberately no
// temporal correlation between days; this is synthetic chart data, not a
// random walk.
func (m *MockSource) Series(fromCurrency, toCurrency string, start, end time.Time) domain.HistoricalSeries {
	base := m.Rate(fromCurrency, toCurrency)

	var points []domain.RatePoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		jitter := decimal.NewFromFloat(1 + (m.random()-0.5)*0.1)
		points = append(points, domain.RatePoint{
			Date: day,
			Rate: base.Mul(jitter),
		})
	}

	return domain.HistoricalSeries{
		FromCurrencyCode: fromCurrency,
		ToCurrencyCode:   toCurrency,
		Points:           points,
		Source:           domain.SourceMock,
	}
}
