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

// rateHandler handles HTTP requests for exchange-rate lookups.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/live/:from/:to", h.getLiveRate)
		rates.GET("/historical", h.getHistoricalRates)
	}
}

// getLiveRate godoc
// @Summary Get the live exchange rate for a pair
// @Description Returns the current spot rate. Falls back to mock data (tagged source "mock") when the provider is unavailable.
// @Tags rates
// @Produce json
// @Param from path string true "From Currency Code (3 letters)"
// @Param to path string true "To Currency Code (3 letters)"
// @Success 200 {object} dto.LiveRateResponse
// @Failure 400 {object} ErrorResponse "Invalid currency code format"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/live/{from}/{to} [get]
func (h *rateHandler) getLiveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	rate, err := h.rateService.ResolveLiveRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrencyPair) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to resolve live rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLiveRateResponse(rate))
}

// getHistoricalRates godoc
// @Summary Get a historical rate series for a pair
// @Description Returns one rate per day over an inclusive date range of at most 365 days, with chart labels and summary stats. Falls back to mock data when the provider is unavailable.
// @Tags rates
// @Produce json
// @Param fromCurrency query string true "From Currency Code (3 letters)"
// @Param toCurrency query string true "To Currency Code (3 letters)"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.HistoricalRatesResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters or date range"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/historical [get]
func (h *rateHandler) getHistoricalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoricalRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	// Formats already validated by binding.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	series, err := h.rateService.ResolveHistoricalSeries(c.Request.Context(), req.FromCurrency, req.ToCurrency, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidCurrencyPair) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to resolve historical series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve historical rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoricalRatesResponse(series, req.StartDate, req.EndDate))
}
