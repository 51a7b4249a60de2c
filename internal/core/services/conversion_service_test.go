package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/core/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ResolveLiveRate(ctx context.Context, fromCurrency, toCurrency string) (domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	return args.Get(0).(domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) ResolveHistoricalSeries(ctx context.Context, fromCurrency, toCurrency string, start, end time.Time) (domain.HistoricalSeries, error) {
	args := m.Called(ctx, fromCurrency, toCurrency, start, end)
	return args.Get(0).(domain.HistoricalSeries), args.Error(1)
}

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) ListHistoryByUser(ctx context.Context, userID string, opts portsrepo.HistoryListOptions) (*portsrepo.HistoryPage, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.HistoryPage), args.Error(1)
}

func (m *MockHistoryRepository) ListRecentHistory(ctx context.Context, userID string, limit int) ([]domain.ConversionRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRecord), args.Error(1)
}

func (m *MockHistoryRepository) CountHistoryByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) SumAmountByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockHistoryRepository) TopPairs(ctx context.Context, userID string, limit int) ([]domain.PairStat, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PairStat), args.Error(1)
}

func (m *MockHistoryRepository) MonthlyVolume(ctx context.Context, userID string, months int) ([]domain.MonthlyVolume, error) {
	args := m.Called(ctx, userID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyVolume), args.Error(1)
}

func (m *MockHistoryRepository) SaveConversion(ctx context.Context, record domain.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) DeleteConversion(ctx context.Context, userID, historyID string) error {
	args := m.Called(ctx, userID, historyID)
	return args.Error(0)
}

func (m *MockHistoryRepository) ClearHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockRateSvc     *MockRateService
	mockHistoryRepo *MockHistoryRepository
	service         portssvc.ConversionSvcFacade
	ctx             context.Context
	userID          string
}

func (s *ConversionServiceTestSuite) SetupTest() {
	s.mockRateSvc = new(MockRateService)
	s.mockHistoryRepo = new(MockHistoryRepository)
	s.service = services.NewConversionService(s.mockRateSvc, s.mockHistoryRepo)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *ConversionServiceTestSuite) liveRate(rate string) domain.ExchangeRate {
	return domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.RequireFromString(rate),
		Source:           domain.SourceLive,
	}
}

func (s *ConversionServiceTestSuite) TestConvert_Success() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(s.liveRate("83.25"), nil).Once()
	s.mockHistoryRepo.On("SaveConversion", mock.Anything, mock.MatchedBy(func(r domain.ConversionRecord) bool {
		return r.UserID == s.userID &&
			r.FromCurrencyCode == "USD" &&
			r.ToCurrencyCode == "INR" &&
			r.HistoryID != "" &&
			r.ConvertedAmount.Equal(decimal.RequireFromString("8325")) &&
			r.FinalAmount.Equal(decimal.RequireFromString("8075.25"))
	})).Return(nil).Once()

	req := dto.ConvertRequest{
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Amount:       decimal.NewFromInt(100),
		FeeType:      "bank",
	}
	outcome, err := s.service.Convert(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal("USD-INR", outcome.Pair.String())
	s.Equal(domain.SourceLive, outcome.Source)
	s.True(outcome.Result.ConvertedAmount.Equal(decimal.RequireFromString("8325")))
	s.True(outcome.Result.FeeAmount.Equal(decimal.RequireFromString("249.75")))
	s.True(outcome.Result.FinalAmount.Equal(decimal.RequireFromString("8075.25")))
	s.mockRateSvc.AssertExpectations(s.T())
	s.mockHistoryRepo.AssertExpectations(s.T())
}

func (s *ConversionServiceTestSuite) TestConvert_TagsFallbackSource() {
	mockRate := domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.RequireFromString("83.25"),
		Source:           domain.SourceMock,
	}
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").Return(mockRate, nil).Once()
	s.mockHistoryRepo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil).Once()

	outcome, err := s.service.Convert(s.ctx, s.userID, dto.ConvertRequest{
		FromCurrency: "USD", ToCurrency: "INR", Amount: decimal.NewFromInt(10),
	})

	s.Require().NoError(err)
	s.Equal(domain.SourceMock, outcome.Source)
}

func (s *ConversionServiceTestSuite) TestConvert_SkipsHistoryWhenOptedOut() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(s.liveRate("83.25"), nil).Once()

	save := false
	_, err := s.service.Convert(s.ctx, s.userID, dto.ConvertRequest{
		FromCurrency: "USD", ToCurrency: "INR",
		Amount: decimal.NewFromInt(100), SaveHistory: &save,
	})

	s.Require().NoError(err)
	s.mockHistoryRepo.AssertNotCalled(s.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (s *ConversionServiceTestSuite) TestConvert_HistoryFailureIsSwallowed() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(s.liveRate("83.25"), nil).Once()
	s.mockHistoryRepo.On("SaveConversion", mock.Anything, mock.Anything).
		Return(errors.New("db down")).Once()

	outcome, err := s.service.Convert(s.ctx, s.userID, dto.ConvertRequest{
		FromCurrency: "USD", ToCurrency: "INR", Amount: decimal.NewFromInt(100),
	})

	s.Require().NoError(err, "a history write failure must never fail the conversion")
	s.NotNil(outcome)
	s.mockHistoryRepo.AssertExpectations(s.T())
}

func (s *ConversionServiceTestSuite) TestConvert_NonPositiveAmount() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(s.liveRate("83.25"), nil).Once()

	_, err := s.service.Convert(s.ctx, s.userID, dto.ConvertRequest{
		FromCurrency: "USD", ToCurrency: "INR", Amount: decimal.Zero,
	})

	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	s.mockHistoryRepo.AssertNotCalled(s.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (s *ConversionServiceTestSuite) TestConvert_InvalidPairPropagates() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "US", "INR").
		Return(domain.ExchangeRate{}, apperrors.ErrInvalidCurrencyPair).Once()

	_, err := s.service.Convert(s.ctx, s.userID, dto.ConvertRequest{
		FromCurrency: "US", ToCurrency: "INR", Amount: decimal.NewFromInt(100),
	})

	s.ErrorIs(err, apperrors.ErrInvalidCurrencyPair)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
