package services

import (
	portsprov "github.com/fxdeck/currency_converter_app/internal/core/ports/providers"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/platform/config"
)

// RateSources bundles the external rate providers the service layer consumes.
type RateSources struct {
	Live       portsprov.LiveRateSource
	Historical portsprov.HistoricalRateSource
	Mock       portsprov.MockRateSource
}

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sources RateSources) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Rate = NewRateService(sources.Live, sources.Historical, sources.Mock)
	container.Conversion = NewConversionService(container.Rate, repos.HistoryRepo)
	container.Bookmark = NewBookmarkService(repos.BookmarkRepo, container.Rate)
	container.History = NewHistoryService(repos.HistoryRepo)
	container.News = NewNewsService(nil)
	container.Dashboard = NewDashboardService(
		container.User,
		container.Bookmark,
		container.News,
		repos.HistoryRepo,
		cfg.BookmarkStaleAfter,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.TokenSvcFacade      = (*tokenService)(nil)
	_ portssvc.RateSvcFacade       = (*rateService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
	_ portssvc.BookmarkSvcFacade   = (*bookmarkService)(nil)
	_ portssvc.HistorySvcFacade    = (*historyService)(nil)
	_ portssvc.DashboardSvcFacade  = (*dashboardService)(nil)
	_ portssvc.NewsSvcFacade       = (*newsService)(nil)
)
