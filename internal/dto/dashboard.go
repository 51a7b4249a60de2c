package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/utils"
)

// DashboardUser is the abbreviated user block on the dashboard.
type DashboardUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// DashboardStats holds the headline totals.
type DashboardStats struct {
	TotalConversions int64  `json:"totalConversions"`
	TotalBookmarks   int64  `json:"totalBookmarks"`
	TotalAmount      string `json:"totalAmount"`
}

// NewsItemResponse is one forex headline with a relative date.
type NewsItemResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// DashboardResponse is the wire shape of the dashboard aggregate.
type DashboardResponse struct {
	User            DashboardUser          `json:"user"`
	Stats           DashboardStats         `json:"stats"`
	RecentHistory   []HistoryEntryResponse `json:"recentHistory"`
	BookmarkedPairs []BookmarkResponse     `json:"bookmarkedPairs"`
	NewsItems       []NewsItemResponse     `json:"newsItems"`
}

// ToNewsItemResponses maps headlines to their wire shape with relative dates.
func ToNewsItemResponses(items []domain.NewsItem, now time.Time) []NewsItemResponse {
	news := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		news = append(news, NewsItemResponse{
			ID:    item.ID,
			Title: item.Title,
			Date:  utils.RelativeTime(item.PublishedAt, now),
		})
	}
	return news
}

// ToDashboardResponse maps a dashboard overview to its wire shape.
func ToDashboardResponse(overview *domain.DashboardOverview, now time.Time) DashboardResponse {
	recent := make([]HistoryEntryResponse, 0, len(overview.RecentHistory))
	for i := range overview.RecentHistory {
		recent = append(recent, ToHistoryEntryResponse(&overview.RecentHistory[i], now))
	}
	news := ToNewsItemResponses(overview.News, now)
	return DashboardResponse{
		User: DashboardUser{
			Username: overview.User.Username,
			Email:    overview.User.Email,
			Avatar:   overview.User.AvatarURL,
		},
		Stats: DashboardStats{
			TotalConversions: overview.TotalConversions,
			TotalBookmarks:   overview.TotalBookmarks,
			TotalAmount:      utils.FormatAmount(overview.TotalAmount),
		},
		RecentHistory:   recent,
		BookmarkedPairs: ToBookmarkResponses(overview.Bookmarks),
		NewsItems:       news,
	}
}
