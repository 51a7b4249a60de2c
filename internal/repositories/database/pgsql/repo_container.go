package pgsql

import (
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		BookmarkRepo: newPgxBookmarkRepository(dbPool),
		HistoryRepo:  newPgxHistoryRepository(dbPool),
	}
}
