package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/fxdeck/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookmarkHandler handles HTTP requests for bookmarked currency pairs.
type bookmarkHandler struct {
	bookmarkService portssvc.BookmarkSvcFacade
}

func newBookmarkHandler(bs portssvc.BookmarkSvcFacade) *bookmarkHandler {
	return &bookmarkHandler{bookmarkService: bs}
}

// registerBookmarkRoutes registers routes related to bookmarked pairs.
func registerBookmarkRoutes(rg *gin.RouterGroup, bookmarkService portssvc.BookmarkSvcFacade) {
	h := newBookmarkHandler(bookmarkService)

	bookmarks := rg.Group("/bookmarks")
	{
		bookmarks.GET("", h.listBookmarks)
		bookmarks.GET("/exists", h.bookmarkExists)
		bookmarks.POST("", h.addBookmark)
		bookmarks.DELETE("/:id", h.removeBookmark)
		bookmarks.PUT("/:id/rate", h.refreshBookmark)
		bookmarks.PUT("/rates", h.refreshAllBookmarks)
	}
}

// listBookmarks godoc
// @Summary List bookmarked pairs
// @Description Returns the user's bookmarks, most recently updated first.
// @Tags bookmarks
// @Produce json
// @Success 200 {array} dto.BookmarkResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookmarks [get]
func (h *bookmarkHandler) listBookmarks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bookmarks, err := h.bookmarkService.ListBookmarks(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookmarks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bookmarks"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookmarkResponses(bookmarks))
}

// bookmarkExists godoc
// @Summary Check whether a pair is bookmarked
// @Tags bookmarks
// @Produce json
// @Param fromCurrency query string true "From Currency Code"
// @Param toCurrency query string true "To Currency Code"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookmarks/exists [get]
func (h *bookmarkHandler) bookmarkExists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BookmarkExistsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	exists, err := h.bookmarkService.BookmarkExists(c.Request.Context(), userID, req.FromCurrency, req.ToCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrencyPair) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to check bookmark existence", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// addBookmark godoc
// @Summary Bookmark a currency pair
// @Description Creates a bookmark seeded with the pair's current rate and a neutral trend.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body dto.CreateBookmarkRequest true "Pair to bookmark"
// @Success 201 {object} dto.BookmarkResponse
// @Failure 400 {object} ErrorResponse "Invalid or identical currency codes"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Pair already bookmarked"
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *bookmarkHandler) addBookmark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bookmark, err := h.bookmarkService.AddBookmark(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyPair):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to add bookmark", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add bookmark"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookmarkResponse(bookmark))
}

// removeBookmark godoc
// @Summary Remove a bookmark
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookmarks/{id} [delete]
func (h *bookmarkHandler) removeBookmark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.bookmarkService.RemoveBookmark(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bookmark not found"})
			return
		}
		logger.Error("Failed to remove bookmark", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}

// refreshBookmark godoc
// @Summary Refresh a bookmark's rate
// @Description Re-fetches the pair's rate and updates the trend indicator.
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark ID"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookmarks/{id}/rate [put]
func (h *bookmarkHandler) refreshBookmark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bookmark, err := h.bookmarkService.RefreshBookmarkRate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bookmark not found"})
			return
		}
		logger.Error("Failed to refresh bookmark", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh bookmark"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookmarkResponse(bookmark))
}

// refreshAllBookmarks godoc
// @Summary Refresh every bookmark's rate
// @Description Refreshes all bookmarks, collecting per-item results. One failure never aborts the rest.
// @Tags bookmarks
// @Produce json
// @Success 200 {object} dto.RefreshAllBookmarksResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookmarks/rates [put]
func (h *bookmarkHandler) refreshAllBookmarks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.bookmarkService.RefreshAllBookmarkRates(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to refresh bookmarks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh bookmarks"})
		return
	}

	message := fmt.Sprintf("Updated %d of %d bookmarks", summary.UpdatedCount, summary.TotalCount)
	c.JSON(http.StatusOK, dto.ToRefreshAllBookmarksResponse(summary, message))
}
