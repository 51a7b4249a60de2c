package services

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
)

// DashboardSvcFacade assembles the dashboard aggregate.
type DashboardSvcFacade interface {
	// DashboardOverview gathers the user's totals, recent conversions,
	// bookmarks (refreshing any older than the configured staleness
	// threshold), and news.
	DashboardOverview(ctx context.Context, userID string) (*domain.DashboardOverview, error)
}

// NewsSvcFacade supplies forex headlines for the dashboard.
type NewsSvcFacade interface {
	// ForexNews returns the current headline list.
	ForexNews(ctx context.Context) []domain.NewsItem
}
