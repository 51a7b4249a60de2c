package services

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
)

// newsHeadlines is the static headline set served until a real news feed is
// integrated. Offsets are hours before now.
var newsHeadlines = []struct {
	title       string
	hoursBefore int
}{
	{"Dollar steadies as markets await Federal Reserve rate decision", 2},
	{"Euro climbs on stronger-than-expected eurozone PMI data", 5},
	{"Yen slides to fresh lows as BOJ holds policy unchanged", 9},
	{"Pound rallies after UK inflation surprise", 14},
	{"Emerging market currencies gain as risk appetite returns", 22},
}

// newsService serves mock forex headlines with freshly computed timestamps.
type newsService struct {
	BaseService
	now func() time.Time
}

// NewNewsService creates a new news service. A nil now function defaults to
// time.Now.
func NewNewsService(now func() time.Time) portssvc.NewsSvcFacade {
	if now == nil {
		now = time.Now
	}
	return &newsService{now: now}
}

// ForexNews returns the current headline list, newest first.
func (s *newsService) ForexNews(ctx context.Context) []domain.NewsItem {
	now := s.now()
	items := make([]domain.NewsItem, 0, len(newsHeadlines))
	for i, h := range newsHeadlines {
		items = append(items, domain.NewsItem{
			ID:          i + 1,
			Title:       h.title,
			PublishedAt: now.Add(-time.Duration(h.hoursBefore) * time.Hour),
		})
	}
	return items
}
