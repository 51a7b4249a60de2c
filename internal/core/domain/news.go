package domain

import "time"

// NewsItem is a single forex headline shown on the dashboard.
type NewsItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
}
