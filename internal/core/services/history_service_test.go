package services_test

import (
	"context"
	"testing"

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

type HistoryServiceTestSuite struct {
	suite.Suite
	mockHistoryRepo *MockHistoryRepository
	service         portssvc.HistorySvcFacade
	ctx             context.Context
	userID          string
}

func (s *HistoryServiceTestSuite) SetupTest() {
	s.mockHistoryRepo = new(MockHistoryRepository)
	s.service = services.NewHistoryService(s.mockHistoryRepo)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *HistoryServiceTestSuite) TestListHistory_PassesOptionsThrough() {
	expected := &portsrepo.HistoryPage{TotalCount: 42}
	s.mockHistoryRepo.On("ListHistoryByUser", mock.Anything, s.userID, portsrepo.HistoryListOptions{
		Page: 2, Limit: 10, SortBy: "amount", SortOrder: "asc",
	}).Return(expected, nil).Once()

	page, err := s.service.ListHistory(s.ctx, s.userID, dto.HistoryListRequest{
		Page: 2, Limit: 10, SortBy: "amount", SortOrder: "asc",
	})

	s.Require().NoError(err)
	s.Equal(int64(42), page.TotalCount)
	s.mockHistoryRepo.AssertExpectations(s.T())
}

func (s *HistoryServiceTestSuite) TestHistoryStats() {
	topPairs := []domain.PairStat{
		{FromCurrencyCode: "USD", ToCurrencyCode: "INR", Count: 7, TotalAmount: decimal.RequireFromString("700")},
	}
	monthly := []domain.MonthlyVolume{
		{Year: 2024, Month: 3, Count: 4, TotalAmount: decimal.RequireFromString("330.50")},
	}
	s.mockHistoryRepo.On("CountHistoryByUser", mock.Anything, s.userID).Return(int64(11), nil).Once()
	s.mockHistoryRepo.On("TopPairs", mock.Anything, s.userID, 5).Return(topPairs, nil).Once()
	s.mockHistoryRepo.On("MonthlyVolume", mock.Anything, s.userID, 12).Return(monthly, nil).Once()

	stats, err := s.service.HistoryStats(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Equal(int64(11), stats.TotalConversions)
	s.Equal(topPairs, stats.TopPairs)
	s.Equal(monthly, stats.MonthlyVolume)
	s.mockHistoryRepo.AssertExpectations(s.T())
}

func (s *HistoryServiceTestSuite) TestAddHistory_RecomputesDerivedFigures() {
	s.mockHistoryRepo.On("SaveConversion", mock.Anything, mock.MatchedBy(func(r domain.ConversionRecord) bool {
		return r.ConvertedAmount.Equal(decimal.RequireFromString("8325")) &&
			r.FinalAmount.Equal(decimal.RequireFromString("8075.25"))
	})).Return(nil).Once()

	record, err := s.service.AddHistory(s.ctx, s.userID, dto.AddHistoryRequest{
		FromCurrency: "usd",
		ToCurrency:   "inr",
		Amount:       decimal.NewFromInt(100),
		Rate:         decimal.RequireFromString("83.25"),
		FeeType:      "bank",
		FeeAmount:    decimal.RequireFromString("249.75"),
	})

	s.Require().NoError(err)
	s.Equal("USD", record.FromCurrencyCode)
	s.Equal("INR", record.ToCurrencyCode)
	s.True(record.ConvertedAmount.Equal(decimal.RequireFromString("8325")))
	s.True(record.FinalAmount.Equal(decimal.RequireFromString("8075.25")))
	s.NotEmpty(record.HistoryID)
	s.mockHistoryRepo.AssertExpectations(s.T())
}

func (s *HistoryServiceTestSuite) TestAddHistory_AcceptsIdentityPair() {
	s.mockHistoryRepo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil).Once()

	record, err := s.service.AddHistory(s.ctx, s.userID, dto.AddHistoryRequest{
		FromCurrency: "USD",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(50),
		Rate:         decimal.NewFromInt(1),
		FinalAmount:  decimal.NewFromInt(50),
	})

	s.Require().NoError(err)
	s.Equal("USD", record.FromCurrencyCode)
	s.Equal("USD", record.ToCurrencyCode)
}

func (s *HistoryServiceTestSuite) TestAddHistory_RejectsNonPositiveAmount() {
	_, err := s.service.AddHistory(s.ctx, s.userID, dto.AddHistoryRequest{
		FromCurrency: "USD", ToCurrency: "INR",
		Amount: decimal.Zero, Rate: decimal.NewFromInt(1),
	})

	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	s.mockHistoryRepo.AssertNotCalled(s.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (s *HistoryServiceTestSuite) TestAddHistory_RejectsNonPositiveRate() {
	_, err := s.service.AddHistory(s.ctx, s.userID, dto.AddHistoryRequest{
		FromCurrency: "USD", ToCurrency: "INR",
		Amount: decimal.NewFromInt(100), Rate: decimal.Zero,
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *HistoryServiceTestSuite) TestDeleteHistory_NotFound() {
	s.mockHistoryRepo.On("DeleteConversion", mock.Anything, s.userID, "missing").
		Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteHistory(s.ctx, s.userID, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *HistoryServiceTestSuite) TestClearHistory() {
	s.mockHistoryRepo.On("ClearHistory", mock.Anything, s.userID).Return(int64(7), nil).Once()

	deleted, err := s.service.ClearHistory(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Equal(int64(7), deleted)
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
