package domain

import "github.com/shopspring/decimal"

// DashboardOverview aggregates everything the dashboard shows for one user.
// Bookmarks older than the caller's staleness threshold have already been
// refreshed (or left stale on error) by the time this is assembled.
type DashboardOverview struct {
	User             User
	TotalConversions int64
	TotalBookmarks   int64
	TotalAmount      decimal.Decimal
	RecentHistory    []ConversionRecord
	Bookmarks        []Bookmark
	News             []NewsItem
}
