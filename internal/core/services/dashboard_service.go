package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
)

// recentHistoryLimit caps the recent-conversions strip on the dashboard.
const recentHistoryLimit = 4

// dashboardService assembles the dashboard aggregate from the other services
// and repositories.
type dashboardService struct {
	BaseService
	userService     portssvc.UserSvcFacade
	bookmarkService portssvc.BookmarkSvcFacade
	newsService     portssvc.NewsSvcFacade
	historyRepo     portsrepo.HistoryRepositoryFacade
	staleAfter      time.Duration
}

// NewDashboardService creates a new dashboard service. staleAfter controls
// how old a bookmark's rate may be before the dashboard refreshes it.
func NewDashboardService(
	userService portssvc.UserSvcFacade,
	bookmarkService portssvc.BookmarkSvcFacade,
	newsService portssvc.NewsSvcFacade,
	historyRepo portsrepo.HistoryRepositoryFacade,
	staleAfter time.Duration,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		userService:     userService,
		bookmarkService: bookmarkService,
		newsService:     newsService,
		historyRepo:     historyRepo,
		staleAfter:      staleAfter,
	}
}

// DashboardOverview gathers the user's totals, recent conversions, bookmarks,
// and news. Bookmarks whose rate is older than the staleness threshold are
// refreshed in place first; a refresh failure leaves the stale rate showing
// rather than failing the whole dashboard.
func (s *dashboardService) DashboardOverview(ctx context.Context, userID string) (*domain.DashboardOverview, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.bookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range bookmarks {
		if !bookmarks[i].IsStale(now, s.staleAfter) {
			continue
		}
		refreshed, err := s.bookmarkService.RefreshBookmarkRate(ctx, userID, bookmarks[i].BookmarkID)
		if err != nil {
			s.LogWarn(ctx, "Failed to refresh stale bookmark for dashboard",
				"bookmark_id", bookmarks[i].BookmarkID, "error", err.Error())
			continue
		}
		bookmarks[i] = *refreshed
	}

	totalConversions, err := s.historyRepo.CountHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}

	totalAmount, err := s.historyRepo.SumAmountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum converted amounts: %w", err)
	}

	recent, err := s.historyRepo.ListRecentHistory(ctx, userID, recentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent history: %w", err)
	}

	return &domain.DashboardOverview{
		User:             *user,
		TotalConversions: totalConversions,
		TotalBookmarks:   int64(len(bookmarks)),
		TotalAmount:      totalAmount,
		RecentHistory:    recent,
		Bookmarks:        bookmarks,
		News:             s.newsService.ForexNews(ctx),
	}, nil
}
