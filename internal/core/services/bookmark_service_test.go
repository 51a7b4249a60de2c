package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/core/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookmarkRepository ---
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) FindBookmarkByID(ctx context.Context, userID, bookmarkID string) (*domain.Bookmark, error) {
	args := m.Called(ctx, userID, bookmarkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) FindBookmarkByPair(ctx context.Context, userID string, pair domain.CurrencyPair) (*domain.Bookmark, error) {
	args := m.Called(ctx, userID, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) CountBookmarksByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookmarkRepository) SaveBookmark(ctx context.Context, bookmark domain.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) UpdateBookmarkRate(ctx context.Context, bookmark domain.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID string) error {
	args := m.Called(ctx, userID, bookmarkID)
	return args.Error(0)
}

// --- Test Suite ---
type BookmarkServiceTestSuite struct {
	suite.Suite
	mockBookmarkRepo *MockBookmarkRepository
	mockRateSvc      *MockRateService
	service          portssvc.BookmarkSvcFacade
	ctx              context.Context
	userID           string
}

func (s *BookmarkServiceTestSuite) SetupTest() {
	s.mockBookmarkRepo = new(MockBookmarkRepository)
	s.mockRateSvc = new(MockRateService)
	s.service = services.NewBookmarkService(s.mockBookmarkRepo, s.mockRateSvc)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *BookmarkServiceTestSuite) bookmark(id, from, to, rate string) domain.Bookmark {
	now := time.Now().Add(-2 * time.Hour)
	return domain.Bookmark{
		BookmarkID:       id,
		UserID:           s.userID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		CurrentRate:      decimal.RequireFromString(rate),
		Trend:            domain.TrendNeutral,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (s *BookmarkServiceTestSuite) TestAddBookmark_Success() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(domain.ExchangeRate{
			FromCurrencyCode: "USD", ToCurrencyCode: "INR",
			Rate: decimal.RequireFromString("83.25"), Source: domain.SourceLive,
		}, nil).Once()
	s.mockBookmarkRepo.On("SaveBookmark", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.UserID == s.userID &&
			b.FromCurrencyCode == "USD" && b.ToCurrencyCode == "INR" &&
			b.Trend == domain.TrendNeutral && b.BookmarkID != ""
	})).Return(nil).Once()

	bookmark, err := s.service.AddBookmark(s.ctx, s.userID, dto.CreateBookmarkRequest{
		FromCurrency: "usd", ToCurrency: "inr",
	})

	s.Require().NoError(err)
	s.Equal("USD", bookmark.FromCurrencyCode)
	s.True(bookmark.CurrentRate.Equal(decimal.RequireFromString("83.25")))
	s.Equal(domain.TrendNeutral, bookmark.Trend)
	s.mockBookmarkRepo.AssertExpectations(s.T())
}

func (s *BookmarkServiceTestSuite) TestAddBookmark_Duplicate() {
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(domain.ExchangeRate{
			FromCurrencyCode: "USD", ToCurrencyCode: "INR",
			Rate: decimal.RequireFromString("83.25"), Source: domain.SourceLive,
		}, nil).Once()
	s.mockBookmarkRepo.On("SaveBookmark", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.AddBookmark(s.ctx, s.userID, dto.CreateBookmarkRequest{
		FromCurrency: "USD", ToCurrency: "INR",
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *BookmarkServiceTestSuite) TestAddBookmark_RejectsIdenticalCodes() {
	_, err := s.service.AddBookmark(s.ctx, s.userID, dto.CreateBookmarkRequest{
		FromCurrency: "USD", ToCurrency: "usd",
	})

	s.ErrorIs(err, apperrors.ErrInvalidCurrencyPair)
	s.mockRateSvc.AssertNotCalled(s.T(), "ResolveLiveRate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookmarkServiceTestSuite) TestBookmarkExists() {
	pair, err := domain.NewCurrencyPair("USD", "INR")
	s.Require().NoError(err)
	existing := s.bookmark("bm-1", "USD", "INR", "83.25")
	s.mockBookmarkRepo.On("FindBookmarkByPair", mock.Anything, s.userID, pair).
		Return(&existing, nil).Once()

	exists, err := s.service.BookmarkExists(s.ctx, s.userID, "usd", "inr")

	s.Require().NoError(err)
	s.True(exists)
}

func (s *BookmarkServiceTestSuite) TestBookmarkExists_NotFound() {
	pair, err := domain.NewCurrencyPair("USD", "INR")
	s.Require().NoError(err)
	s.mockBookmarkRepo.On("FindBookmarkByPair", mock.Anything, s.userID, pair).
		Return(nil, apperrors.ErrNotFound).Once()

	exists, err := s.service.BookmarkExists(s.ctx, s.userID, "USD", "INR")

	s.Require().NoError(err, "absence is not an error")
	s.False(exists)
}

func (s *BookmarkServiceTestSuite) TestRefreshBookmarkRate_TrendUp() {
	existing := s.bookmark("bm-1", "USD", "INR", "83.25")
	s.mockBookmarkRepo.On("FindBookmarkByID", mock.Anything, s.userID, "bm-1").
		Return(&existing, nil).Once()
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(domain.ExchangeRate{
			FromCurrencyCode: "USD", ToCurrencyCode: "INR",
			Rate: decimal.RequireFromString("84.10"), Source: domain.SourceLive,
		}, nil).Once()
	s.mockBookmarkRepo.On("UpdateBookmarkRate", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.BookmarkID == "bm-1" &&
			b.Trend == domain.TrendUp &&
			b.CurrentRate.Equal(decimal.RequireFromString("84.10"))
	})).Return(nil).Once()

	refreshed, err := s.service.RefreshBookmarkRate(s.ctx, s.userID, "bm-1")

	s.Require().NoError(err)
	s.Equal(domain.TrendUp, refreshed.Trend)
	s.True(refreshed.CurrentRate.Equal(decimal.RequireFromString("84.10")))
	s.mockBookmarkRepo.AssertExpectations(s.T())
}

func (s *BookmarkServiceTestSuite) TestRefreshBookmarkRate_NotFound() {
	s.mockBookmarkRepo.On("FindBookmarkByID", mock.Anything, s.userID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.RefreshBookmarkRate(s.ctx, s.userID, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BookmarkServiceTestSuite) TestRefreshAllBookmarkRates_PartialFailure() {
	bookmarks := []domain.Bookmark{
		s.bookmark("bm-1", "USD", "INR", "83.25"),
		s.bookmark("bm-2", "USD", "EUR", "0.92"),
		s.bookmark("bm-3", "GBP", "USD", "1.27"),
	}
	s.mockBookmarkRepo.On("ListBookmarksByUser", mock.Anything, s.userID).
		Return(bookmarks, nil).Once()

	rateFor := func(from, to, rate string) domain.ExchangeRate {
		return domain.ExchangeRate{
			FromCurrencyCode: from, ToCurrencyCode: to,
			Rate: decimal.RequireFromString(rate), Source: domain.SourceLive,
		}
	}
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "INR").
		Return(rateFor("USD", "INR", "84.00"), nil).Once()
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "USD", "EUR").
		Return(rateFor("USD", "EUR", "0.91"), nil).Once()
	s.mockRateSvc.On("ResolveLiveRate", mock.Anything, "GBP", "USD").
		Return(rateFor("GBP", "USD", "1.28"), nil).Once()

	// The middle bookmark's persist fails; the others succeed.
	s.mockBookmarkRepo.On("UpdateBookmarkRate", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.BookmarkID == "bm-2"
	})).Return(errors.New("db down")).Once()
	s.mockBookmarkRepo.On("UpdateBookmarkRate", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.BookmarkID != "bm-2"
	})).Return(nil).Twice()

	summary, err := s.service.RefreshAllBookmarkRates(s.ctx, s.userID)

	s.Require().NoError(err, "one failed refresh must not abort the rest")
	s.Equal(3, summary.TotalCount)
	s.Equal(2, summary.UpdatedCount)
	s.Require().Len(summary.Results, 3)
	s.True(summary.Results[0].Updated)
	s.False(summary.Results[1].Updated)
	s.NotEmpty(summary.Results[1].Error)
	s.True(summary.Results[2].Updated)
	s.mockBookmarkRepo.AssertExpectations(s.T())
}

func (s *BookmarkServiceTestSuite) TestRemoveBookmark_NotFound() {
	s.mockBookmarkRepo.On("DeleteBookmark", mock.Anything, s.userID, "missing").
		Return(apperrors.ErrNotFound).Once()

	err := s.service.RemoveBookmark(s.ctx, s.userID, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBookmarkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkServiceTestSuite))
}
