package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend classifies a bookmark's rate movement relative to its previously
// stored value.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Bookmark is a user's saved currency pair with its last observed rate.
// At most one bookmark exists per (user, pair); the uniqueness constraint
// lives in the database.
type Bookmark struct {
	BookmarkID       string          `json:"bookmarkID"`
	UserID           string          `json:"userID"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	CurrentRate      decimal.Decimal `json:"currentRate"`
	Trend            Trend           `json:"trend"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// TrendOf classifies the change from oldRate to newRate. Equal rates yield
// neutral, so two refreshes with the same rate both reset the trend.
func TrendOf(oldRate, newRate decimal.Decimal) Trend {
	switch {
	case newRate.GreaterThan(oldRate):
		return TrendUp
	case newRate.LessThan(oldRate):
		return TrendDown
	default:
		return TrendNeutral
	}
}

// ApplyRate transitions the bookmark to a freshly observed rate: the trend is
// derived from the stored rate, then the stored rate and updatedAt move
// forward. Persisting the result is the caller's responsibility.
func (b *Bookmark) ApplyRate(newRate decimal.Decimal, now time.Time) {
	b.Trend = TrendOf(b.CurrentRate, newRate)
	b.CurrentRate = newRate
	b.UpdatedAt = now
}

// IsStale reports whether the bookmark's rate is older than the given
// threshold. The threshold belongs to the caller, not the bookmark.
func (b *Bookmark) IsStale(now time.Time, threshold time.Duration) bool {
	return now.Sub(b.UpdatedAt) > threshold
}

// BookmarkRefreshResult is the per-item outcome of a bulk rate refresh.
// Updated is true for both live and mock-derived rates; Error is set only
// when the bookmark was left stale.
type BookmarkRefreshResult struct {
	Bookmark Bookmark `json:"bookmark"`
	Updated  bool     `json:"updated"`
	Error    string   `json:"error,omitempty"`
}

// BookmarkRefreshSummary collects every per-item outcome of a bulk refresh.
// A fetch failure on one bookmark never aborts the rest.
type BookmarkRefreshSummary struct {
	Results      []BookmarkRefreshResult `json:"results"`
	UpdatedCount int                     `json:"updatedCount"`
	TotalCount   int                     `json:"totalCount"`
}
