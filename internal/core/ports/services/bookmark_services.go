package services

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/dto"
)

// BookmarkReaderSvc defines read operations for bookmarked pairs
type BookmarkReaderSvc interface {
	// ListBookmarks retrieves a user's bookmarks, most recently updated first.
	ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// BookmarkExists reports whether the user already bookmarked the pair.
	BookmarkExists(ctx context.Context, userID, fromCurrency, toCurrency string) (bool, error)
}

// BookmarkWriterSvc defines write operations for bookmarked pairs
type BookmarkWriterSvc interface {
	// AddBookmark creates a bookmark seeded with the current rate (live, else
	// mock). ErrInvalidCurrencyPair for identical or malformed codes;
	// ErrDuplicate when the pair is already bookmarked.
	AddBookmark(ctx context.Context, userID string, req dto.CreateBookmarkRequest) (*domain.Bookmark, error)

	// RemoveBookmark deletes a bookmark owned by the user. ErrNotFound when no
	// such bookmark exists.
	RemoveBookmark(ctx context.Context, userID, bookmarkID string) error

	// RefreshBookmarkRate re-fetches the pair's rate (live, else mock), applies
	// the trend transition, and persists the result.
	RefreshBookmarkRate(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error)

	// RefreshAllBookmarkRates refreshes every bookmark sequentially, collecting
	// per-item outcomes; one failure never aborts the rest. Mock-fallback
	// refreshes count toward UpdatedCount.
	RefreshAllBookmarkRates(ctx context.Context, userID string) (*domain.BookmarkRefreshSummary, error)
}

// BookmarkSvcFacade combines all bookmark-related service interfaces
type BookmarkSvcFacade interface {
	BookmarkReaderSvc
	BookmarkWriterSvc
}
