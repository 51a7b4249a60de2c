package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/fxdeck/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for currency conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// registerConversionRoutes registers the conversion route.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)
	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Resolves the current rate (mock fallback on provider failure), applies the selected fee preset, and records the conversion to history unless saveHistory is false.
// @Tags conversion
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or currency codes"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	outcome, err := h.conversionService.Convert(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInvalidCurrencyPair),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to convert", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to perform conversion"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(outcome))
}
