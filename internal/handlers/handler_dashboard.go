package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/fxdeck/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the dashboard aggregate and the
// standalone news feed.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	newsService      portssvc.NewsSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade, ns portssvc.NewsSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds, newsService: ns}
}

// registerDashboardRoutes registers the dashboard and news routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, newsService portssvc.NewsSvcFacade) {
	h := newDashboardHandler(dashboardService, newsService)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/news", h.getNews)
}

// getDashboard godoc
// @Summary Get the dashboard overview
// @Description Returns the user block, headline totals, recent conversions, bookmarks (stale rates refreshed), and forex headlines.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	overview, err := h.dashboardService.DashboardOverview(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to assemble dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(overview, time.Now()))
}

// getNews godoc
// @Summary Get forex news headlines
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.NewsItemResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /news [get]
func (h *dashboardHandler) getNews(c *gin.Context) {
	items := h.newsService.ForexNews(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToNewsItemResponses(items, time.Now()))
}
