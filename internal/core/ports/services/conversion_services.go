package services

import (
	"context"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/dto"
)

// ConversionSvcFacade performs currency conversions.
type ConversionSvcFacade interface {
	// Convert resolves a rate (live, else mock), computes the fee-adjusted
	// conversion, and records it to the user's history when requested. The
	// history write is best-effort: its failure never fails the conversion.
	// ErrInvalidAmount for non-positive amounts.
	Convert(ctx context.Context, userID string, req dto.ConvertRequest) (*domain.ConversionOutcome, error)
}
