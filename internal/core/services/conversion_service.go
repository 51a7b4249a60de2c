package services

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/google/uuid"
)

// conversionService performs currency conversions on top of the rate
// resolver and records them to history.
type conversionService struct {
	BaseService
	rateService portssvc.RateSvcFacade
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewConversionService creates a new conversion service.
func NewConversionService(rateService portssvc.RateSvcFacade, historyRepo portsrepo.HistoryRepositoryFacade) portssvc.ConversionSvcFacade {
	return &conversionService{
		rateService: rateService,
		historyRepo: historyRepo,
	}
}

// Convert resolves a rate for the requested pair, computes the fee-adjusted
// conversion, and records it to the user's history unless the client opted
// out. The history write is best-effort: its failure is logged and swallowed
// so a transient storage problem never hides the conversion result.
func (s *conversionService) Convert(ctx context.Context, userID string, req dto.ConvertRequest) (*domain.ConversionOutcome, error) {
	rate, err := s.rateService.ResolveLiveRate(ctx, req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}

	result, err := domain.Convert(req.Amount, rate.Rate, domain.FeeType(req.FeeType))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	outcome := &domain.ConversionOutcome{
		Pair: domain.CurrencyPair{
			From: rate.FromCurrencyCode,
			To:   rate.ToCurrencyCode,
		},
		Result:      result,
		Source:      rate.Source,
		ConvertedAt: now,
	}

	if req.WantsHistory() {
		record := domain.ConversionRecord{
			HistoryID:        uuid.NewString(),
			UserID:           userID,
			FromCurrencyCode: outcome.Pair.From,
			ToCurrencyCode:   outcome.Pair.To,
			Amount:           result.Amount,
			Rate:             result.Rate,
			ConvertedAmount:  result.ConvertedAmount,
			FeeType:          result.FeeType,
			FeeAmount:        result.FeeAmount,
			FinalAmount:      result.FinalAmount,
			ConvertedAt:      now,
		}
		if err := s.historyRepo.SaveConversion(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to record conversion to history",
				"user_id", userID, "pair", outcome.Pair.String())
		}
	}

	return outcome, nil
}
