package pgsql

import (
	"context"
	"fmt"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

const historyColumns = `history_id, user_id, from_currency, to_currency, amount, rate, converted_amount, fee_type, fee_amount, final_amount, converted_at`

// sortColumns whitelists the client-facing sort keys against their columns.
// Anything not listed sorts by the conversion timestamp.
var sortColumns = map[string]string{
	"convertedAt":  "converted_at",
	"amount":       "amount",
	"fromCurrency": "from_currency",
	"toCurrency":   "to_currency",
}

func scanHistoryRecord(row pgx.Row) (*domain.ConversionRecord, error) {
	var rec domain.ConversionRecord
	err := row.Scan(
		&rec.HistoryID,
		&rec.UserID,
		&rec.FromCurrencyCode,
		&rec.ToCurrencyCode,
		&rec.Amount,
		&rec.Rate,
		&rec.ConvertedAmount,
		&rec.FeeType,
		&rec.FeeAmount,
		&rec.FinalAmount,
		&rec.ConvertedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PgxHistoryRepository) ListHistoryByUser(ctx context.Context, userID string, opts portsrepo.HistoryListOptions) (*portsrepo.HistoryPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 20
	}
	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "converted_at"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}
	offset := (opts.Page - 1) * opts.Limit

	total, err := r.CountHistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// column and direction come from whitelists above, never from the client.
	query := fmt.Sprintf(`
        SELECT `+historyColumns+`
        FROM conversion_history
        WHERE user_id = $1
        ORDER BY %s %s
        LIMIT $2 OFFSET $3;
    `, column, direction)

	rows, err := r.Pool.Query(ctx, query, userID, opts.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for user %s: %w", userID, err)
	}
	defer rows.Close()

	records := make([]domain.ConversionRecord, 0, opts.Limit)
	for rows.Next() {
		rec, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return &portsrepo.HistoryPage{Records: records, TotalCount: total}, nil
}

func (r *PgxHistoryRepository) ListRecentHistory(ctx context.Context, userID string, limit int) ([]domain.ConversionRecord, error) {
	query := `
        SELECT ` + historyColumns + `
        FROM conversion_history
        WHERE user_id = $1
        ORDER BY converted_at DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent history for user %s: %w", userID, err)
	}
	defer rows.Close()

	records := make([]domain.ConversionRecord, 0, limit)
	for rows.Next() {
		rec, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return records, nil
}

func (r *PgxHistoryRepository) CountHistoryByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM conversion_history WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *PgxHistoryRepository) SumAmountByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM conversion_history WHERE user_id = $1;`, userID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum amounts for user %s: %w", userID, err)
	}
	return sum, nil
}

func (r *PgxHistoryRepository) TopPairs(ctx context.Context, userID string, limit int) ([]domain.PairStat, error) {
	query := `
        SELECT from_currency, to_currency, COUNT(*) AS cnt, COALESCE(SUM(amount), 0) AS total
        FROM conversion_history
        WHERE user_id = $1
        GROUP BY from_currency, to_currency
        ORDER BY cnt DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top pairs for user %s: %w", userID, err)
	}
	defer rows.Close()

	stats := make([]domain.PairStat, 0, limit)
	for rows.Next() {
		var stat domain.PairStat
		if err := rows.Scan(&stat.FromCurrencyCode, &stat.ToCurrencyCode, &stat.Count, &stat.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan pair stat row: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pair stat rows: %w", err)
	}
	return stats, nil
}

func (r *PgxHistoryRepository) MonthlyVolume(ctx context.Context, userID string, months int) ([]domain.MonthlyVolume, error) {
	query := `
        SELECT EXTRACT(YEAR FROM converted_at)::int AS yr,
               EXTRACT(MONTH FROM converted_at)::int AS mth,
               COUNT(*) AS cnt,
               COALESCE(SUM(final_amount), 0) AS total
        FROM conversion_history
        WHERE user_id = $1
        GROUP BY yr, mth
        ORDER BY yr DESC, mth DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly volume for user %s: %w", userID, err)
	}
	defer rows.Close()

	volumes := make([]domain.MonthlyVolume, 0, months)
	for rows.Next() {
		var vol domain.MonthlyVolume
		if err := rows.Scan(&vol.Year, &vol.Month, &vol.Count, &vol.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly volume row: %w", err)
		}
		volumes = append(volumes, vol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly volume rows: %w", err)
	}
	return volumes, nil
}

func (r *PgxHistoryRepository) SaveConversion(ctx context.Context, record domain.ConversionRecord) error {
	query := `
        INSERT INTO conversion_history (` + historyColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		record.HistoryID,
		record.UserID,
		record.FromCurrencyCode,
		record.ToCurrencyCode,
		record.Amount,
		record.Rate,
		record.ConvertedAmount,
		record.FeeType,
		record.FeeAmount,
		record.FinalAmount,
		record.ConvertedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion record: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) DeleteConversion(ctx context.Context, userID, historyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM conversion_history WHERE user_id = $1 AND history_id = $2;`, userID, historyID)
	if err != nil {
		return fmt.Errorf("failed to delete history record %s: %w", historyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHistoryRepository) ClearHistory(ctx context.Context, userID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM conversion_history WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history for user %s: %w", userID, err)
	}
	return tag.RowsAffected(), nil
}
