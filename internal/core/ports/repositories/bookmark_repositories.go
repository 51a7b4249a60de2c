package repositories

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
)

// BookmarkReader defines read operations for bookmarked currency pairs
type BookmarkReader interface {
	// ListBookmarksByUser retrieves a user's bookmarks, most recently updated first.
	ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// FindBookmarkByID retrieves one bookmark scoped to its owner.
	FindBookmarkByID(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error)

	// FindBookmarkByPair retrieves the bookmark for a (user, pair), if any.
	FindBookmarkByPair(ctx context.Context, userID string, pair domain.CurrencyPair) (*domain.Bookmark, error)

	// CountBookmarksByUser returns the number of bookmarks a user holds.
	CountBookmarksByUser(ctx context.Context, userID string) (int64, error)
}

// BookmarkWriter defines write operations for bookmarked currency pairs
type BookmarkWriter interface {
	// SaveBookmark persists a new bookmark. ErrDuplicate when the (user, pair)
	// uniqueness constraint is violated.
	SaveBookmark(ctx context.Context, bookmark domain.Bookmark) error

	// UpdateBookmarkRate persists a bookmark's rate, trend, and updatedAt after
	// an ApplyRate transition.
	UpdateBookmarkRate(ctx context.Context, bookmark domain.Bookmark) error

	// DeleteBookmark removes a bookmark scoped to its owner. ErrNotFound when
	// no row matches.
	DeleteBookmark(ctx context.Context, userID, bookmarkID string) error
}

// BookmarkRepositoryFacade combines all bookmark-related repository interfaces
type BookmarkRepositoryFacade interface {
	BookmarkReader
	BookmarkWriter
}
