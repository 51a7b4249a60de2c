package repositories

// RepositoryProvider bundles every repository the service layer needs.
// Concrete implementations are wired in internal/repositories/database/pgsql.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	BookmarkRepo BookmarkRepositoryFacade
	HistoryRepo  HistoryRepositoryFacade
}
