package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookmarkRepository struct {
	BaseRepository
}

func newPgxBookmarkRepository(db *pgxpool.Pool) portsrepo.BookmarkRepositoryFacade {
	return &PgxBookmarkRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BookmarkRepositoryFacade = (*PgxBookmarkRepository)(nil)

const bookmarkColumns = `bookmark_id, user_id, from_currency, to_currency, current_rate, trend, created_at, updated_at`

func scanBookmark(row pgx.Row) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := row.Scan(
		&b.BookmarkID,
		&b.UserID,
		&b.FromCurrencyCode,
		&b.ToCurrencyCode,
		&b.CurrentRate,
		&b.Trend,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	query := `
        SELECT ` + bookmarkColumns + `
        FROM bookmarked_pairs
        WHERE user_id = $1
        ORDER BY updated_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks for user %s: %w", userID, err)
	}
	defer rows.Close()

	bookmarks := make([]domain.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}
	return bookmarks, nil
}

func (r *PgxBookmarkRepository) FindBookmarkByID(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarked_pairs WHERE user_id = $1 AND bookmark_id = $2;`
	b, err := scanBookmark(r.Pool.QueryRow(ctx, query, userID, bookmarkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bookmark %s: %w", bookmarkID, err)
	}
	return b, nil
}

func (r *PgxBookmarkRepository) FindBookmarkByPair(ctx context.Context, userID string, pair domain.CurrencyPair) (*domain.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarked_pairs WHERE user_id = $1 AND from_currency = $2 AND to_currency = $3;`
	b, err := scanBookmark(r.Pool.QueryRow(ctx, query, userID, pair.From, pair.To))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bookmark for pair %s: %w", pair, err)
	}
	return b, nil
}

func (r *PgxBookmarkRepository) CountBookmarksByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookmarked_pairs WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *PgxBookmarkRepository) SaveBookmark(ctx context.Context, bookmark domain.Bookmark) error {
	query := `
        INSERT INTO bookmarked_pairs (` + bookmarkColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		bookmark.BookmarkID,
		bookmark.UserID,
		bookmark.FromCurrencyCode,
		bookmark.ToCurrencyCode,
		bookmark.CurrentRate,
		bookmark.Trend,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	return nil
}

func (r *PgxBookmarkRepository) UpdateBookmarkRate(ctx context.Context, bookmark domain.Bookmark) error {
	query := `
        UPDATE bookmarked_pairs
        SET current_rate = $3, trend = $4, updated_at = $5
        WHERE user_id = $1 AND bookmark_id = $2;
    `
	tag, err := r.Pool.Exec(ctx, query,
		bookmark.UserID,
		bookmark.BookmarkID,
		bookmark.CurrentRate,
		bookmark.Trend,
		bookmark.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update bookmark rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bookmarked_pairs WHERE user_id = $1 AND bookmark_id = $2;`, userID, bookmarkID)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark %s: %w", bookmarkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
