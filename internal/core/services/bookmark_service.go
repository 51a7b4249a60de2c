package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/google/uuid"
)

// bookmarkService manages a user's saved currency pairs and their rate
// refreshes.
type bookmarkService struct {
	BaseService
	bookmarkRepo portsrepo.BookmarkRepositoryFacade
	rateService  portssvc.RateSvcFacade
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(bookmarkRepo portsrepo.BookmarkRepositoryFacade, rateService portssvc.RateSvcFacade) portssvc.BookmarkSvcFacade {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		rateService:  rateService,
	}
}

// ListBookmarks retrieves a user's bookmarks, most recently updated first.
func (s *bookmarkService) ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.ListBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// BookmarkExists reports whether the user already bookmarked the pair.
func (s *bookmarkService) BookmarkExists(ctx context.Context, userID, fromCurrency, toCurrency string) (bool, error) {
	pair, err := domain.NewCurrencyPair(fromCurrency, toCurrency)
	if err != nil {
		return false, err
	}
	_, err = s.bookmarkRepo.FindBookmarkByPair(ctx, userID, pair)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check bookmark existence: %w", err)
	}
	return true, nil
}

// AddBookmark creates a bookmark seeded with the pair's current rate. The
// rate resolution already degrades to mock, so creation only fails on an
// invalid pair, a duplicate, or a storage error.
func (s *bookmarkService) AddBookmark(ctx context.Context, userID string, req dto.CreateBookmarkRequest) (*domain.Bookmark, error) {
	pair, err := domain.NewCurrencyPair(req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateService.ResolveLiveRate(ctx, pair.From, pair.To)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bookmark := domain.Bookmark{
		BookmarkID:       uuid.NewString(),
		UserID:           userID,
		FromCurrencyCode: pair.From,
		ToCurrencyCode:   pair.To,
		CurrentRate:      rate.Rate,
		Trend:            domain.TrendNeutral,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.bookmarkRepo.SaveBookmark(ctx, bookmark); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: pair %s is already bookmarked", apperrors.ErrDuplicate, pair)
		}
		s.LogError(ctx, err, "Failed to save bookmark", "user_id", userID, "pair", pair.String())
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	return &bookmark, nil
}

// RemoveBookmark deletes a bookmark owned by the user.
func (s *bookmarkService) RemoveBookmark(ctx context.Context, userID, bookmarkID string) error {
	if err := s.bookmarkRepo.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// RefreshBookmarkRate re-fetches the pair's rate, applies the trend
// transition, and persists the result.
func (s *bookmarkService) RefreshBookmarkRate(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.FindBookmarkByID(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if err := s.refresh(ctx, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

// RefreshAllBookmarkRates refreshes every bookmark sequentially, collecting
// per-item outcomes. One failure never aborts the rest; mock-fallback
// refreshes count as updated because the stored rate did move forward.
func (s *bookmarkService) RefreshAllBookmarkRates(ctx context.Context, userID string) (*domain.BookmarkRefreshSummary, error) {
	bookmarks, err := s.bookmarkRepo.ListBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks for refresh: %w", err)
	}

	summary := &domain.BookmarkRefreshSummary{
		Results:    make([]domain.BookmarkRefreshResult, 0, len(bookmarks)),
		TotalCount: len(bookmarks),
	}

	for i := range bookmarks {
		bookmark := &bookmarks[i]
		if err := s.refresh(ctx, bookmark); err != nil {
			s.LogWarn(ctx, "Bookmark refresh failed",
				"bookmark_id", bookmark.BookmarkID, "error", err.Error())
			summary.Results = append(summary.Results, domain.BookmarkRefreshResult{
				Bookmark: *bookmark,
				Updated:  false,
				Error:    err.Error(),
			})
			continue
		}
		summary.Results = append(summary.Results, domain.BookmarkRefreshResult{
			Bookmark: *bookmark,
			Updated:  true,
		})
		summary.UpdatedCount++
	}

	return summary, nil
}

// refresh applies a freshly resolved rate to the bookmark and persists it.
func (s *bookmarkService) refresh(ctx context.Context, bookmark *domain.Bookmark) error {
	rate, err := s.rateService.ResolveLiveRate(ctx, bookmark.FromCurrencyCode, bookmark.ToCurrencyCode)
	if err != nil {
		return err
	}

	bookmark.ApplyRate(rate.Rate, time.Now())

	if err := s.bookmarkRepo.UpdateBookmarkRate(ctx, *bookmark); err != nil {
		return fmt.Errorf("failed to persist refreshed rate: %w", err)
	}
	return nil
}
