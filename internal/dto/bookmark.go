package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/utils"
)

// CreateBookmarkRequest defines the payload for bookmarking a currency pair.
type CreateBookmarkRequest struct {
	FromCurrency string `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `json:"toCurrency" binding:"required,currency"`
}

// BookmarkExistsRequest defines the query parameters for an existence check.
type BookmarkExistsRequest struct {
	FromCurrency string `form:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `form:"toCurrency" binding:"required,currency"`
}

// BookmarkResponse is the wire shape of a bookmark. The rate is rendered at
// 4-decimal display precision.
type BookmarkResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      string    `json:"rate"`
	Trend     string    `json:"trend"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBookmarkResponse maps a bookmark to its wire shape.
func ToBookmarkResponse(b *domain.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.BookmarkID,
		From:      b.FromCurrencyCode,
		To:        b.ToCurrencyCode,
		Rate:      utils.FormatRate(b.CurrentRate),
		Trend:     string(b.Trend),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBookmarkResponses maps a slice of bookmarks, preserving order.
func ToBookmarkResponses(bookmarks []domain.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, ToBookmarkResponse(&bookmarks[i]))
	}
	return out
}

// BookmarkRefreshItem is the per-bookmark outcome of a bulk refresh.
type BookmarkRefreshItem struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Rate    string `json:"rate,omitempty"`
	Trend   string `json:"trend,omitempty"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

// RefreshAllBookmarksResponse summarizes a bulk refresh across every bookmark.
type RefreshAllBookmarksResponse struct {
	Message      string                `json:"message"`
	UpdatedCount int                   `json:"updatedCount"`
	TotalCount   int                   `json:"totalCount"`
	Results      []BookmarkRefreshItem `json:"results"`
}

// ToRefreshAllBookmarksResponse maps a refresh summary to its wire shape.
func ToRefreshAllBookmarksResponse(summary *domain.BookmarkRefreshSummary, message string) RefreshAllBookmarksResponse {
	items := make([]BookmarkRefreshItem, 0, len(summary.Results))
	for _, res := range summary.Results {
		item := BookmarkRefreshItem{
			ID:      res.Bookmark.BookmarkID,
			From:    res.Bookmark.FromCurrencyCode,
			To:      res.Bookmark.ToCurrencyCode,
			Updated: res.Updated,
			Error:   res.Error,
		}
		if res.Updated {
			item.Rate = utils.FormatRate(res.Bookmark.CurrentRate)
			item.Trend = string(res.Bookmark.Trend)
		}
		items = append(items, item)
	}
	return RefreshAllBookmarksResponse{
		Message:      message,
		UpdatedCount: summary.UpdatedCount,
		TotalCount:   summary.TotalCount,
		Results:      items,
	}
}
