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

// historyHandler handles HTTP requests for conversion history.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers routes related to conversion history.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("", h.listHistory)
		history.GET("/stats", h.historyStats)
		history.POST("", h.addHistory)
		history.DELETE("/:id", h.deleteHistory)
		history.DELETE("", h.clearHistory)
	}
}

// listHistory godoc
// @Summary List conversion history
// @Description Returns one page of the user's conversion history with pagination metadata.
// @Tags history
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param sortBy query string false "Sort key: convertedAt, amount, fromCurrency, toCurrency"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} dto.HistoryListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, err := h.historyService.ListHistory(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to list history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history"})
		return
	}

	now := time.Now()
	entries := make([]dto.HistoryEntryResponse, 0, len(page.Records))
	for i := range page.Records {
		entries = append(entries, dto.ToHistoryEntryResponse(&page.Records[i], now))
	}

	totalPages := int((page.TotalCount + int64(req.Limit) - 1) / int64(req.Limit))
	c.JSON(http.StatusOK, dto.HistoryListResponse{
		History: entries,
		Pagination: dto.PaginationResponse{
			CurrentPage: req.Page,
			TotalPages:  totalPages,
			TotalCount:  page.TotalCount,
			HasMore:     req.Page < totalPages,
		},
	})
}

// historyStats godoc
// @Summary Aggregate conversion history
// @Description Returns the total conversion count, the five most-used pairs, and monthly volume for the most recent twelve months.
// @Tags history
// @Produce json
// @Success 200 {object} dto.HistoryStatsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/stats [get]
func (h *historyHandler) historyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.historyService.HistoryStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to aggregate history stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to aggregate history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryStatsResponse(stats))
}

// addHistory godoc
// @Summary Record a conversion
// @Description Records a conversion computed by the client.
// @Tags history
// @Accept json
// @Produce json
// @Param record body dto.AddHistoryRequest true "Conversion details"
// @Success 201 {object} dto.HistoryEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [post]
func (h *historyHandler) addHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.historyService.AddHistory(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInvalidCurrencyPair),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to add history record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record conversion"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToHistoryEntryResponse(record, time.Now()))
}

// deleteHistory godoc
// @Summary Delete one history record
// @Tags history
// @Produce json
// @Param id path string true "History record ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id} [delete]
func (h *historyHandler) deleteHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.historyService.DeleteHistory(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "History record not found"})
			return
		}
		logger.Error("Failed to delete history record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete history record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History record deleted"})
}

// clearHistory godoc
// @Summary Clear all history
// @Description Deletes every history record belonging to the user.
// @Tags history
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [delete]
func (h *historyHandler) clearHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.historyService.ClearHistory(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to clear history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History cleared", "deletedCount": deleted})
}
