package services

import (
	"context"
	"testing"
	"time"

	"github.com/dimasfh/profitbot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumForDate(ctx context.Context, chatID int64, date time.Time) (int64, error) {
	args := m.Called(ctx, chatID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumForRange(ctx context.Context, chatID int64, start, end time.Time) (int64, error) {
	args := m.Called(ctx, chatID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumForMonth(ctx context.Context, chatID int64, year int, month time.Month) (int64, error) {
	args := m.Called(ctx, chatID, year, month)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ListForDate(ctx context.Context, chatID int64, date time.Time, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, chatID, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountForDate(ctx context.Context, chatID int64, date time.Time) (int64, error) {
	args := m.Called(ctx, chatID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteAllForChat(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  *LedgerService
	today    time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = NewLedgerService(suite.mockRepo)
	// Wednesday 2025-09-10; its week-of-month window is Sep 8 - Sep 14.
	suite.today = time.Date(2025, time.September, 10, 14, 30, 0, 0, time.Local)
	suite.service.now = func() time.Time { return suite.today }
}

func (suite *LedgerServiceTestSuite) weekWindow() (time.Time, time.Time) {
	start := time.Date(2025, time.September, 8, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.Local)
	return start, end
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Success() {
	ctx := context.Background()
	chatID := int64(-100123)
	start, end := suite.weekWindow()

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ChatID == chatID && txn.UserName == "Budi" && txn.Amount == 5000 && txn.Note == "netflix"
	})).Return(int64(1), nil).Once()
	suite.mockRepo.On("SumForDate", ctx, chatID, suite.today).Return(int64(3000), nil).Once()
	suite.mockRepo.On("SumForRange", ctx, chatID, start, end).Return(int64(12000), nil).Once()
	suite.mockRepo.On("SumForMonth", ctx, chatID, 2025, time.September).Return(int64(40000), nil).Once()

	result, err := suite.service.RecordTransaction(ctx, chatID, "Budi", 5000, "netflix")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(5000), result.Amount)
	suite.Equal(int64(3000), result.DailyTotal)
	suite.Equal(int64(12000), result.WeeklyTotal)
	suite.Equal(int64(40000), result.MonthlyTotal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(int64(0), expectedErr).Once()

	result, err := suite.service.RecordTransaction(ctx, int64(7), "Budi", -2000, "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestStatus_Success() {
	ctx := context.Background()
	chatID := int64(42)
	start, end := suite.weekWindow()

	suite.mockRepo.On("SumForDate", ctx, chatID, suite.today).Return(int64(1000), nil).Once()
	suite.mockRepo.On("SumForRange", ctx, chatID, start, end).Return(int64(2000), nil).Once()
	suite.mockRepo.On("SumForMonth", ctx, chatID, 2025, time.September).Return(int64(3000), nil).Once()
	suite.mockRepo.On("CountForDate", ctx, chatID, suite.today).Return(int64(4), nil).Once()

	report, err := suite.service.Status(ctx, chatID)

	suite.Require().NoError(err)
	suite.Equal(2, report.WeekNumber)
	suite.Equal(int64(1000), report.DailyTotal)
	suite.Equal(int64(2000), report.WeeklyTotal)
	suite.Equal(int64(3000), report.MonthlyTotal)
	suite.Equal(int64(4), report.TodayCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestWeeklyReport_UsesMonthClippedWindow() {
	ctx := context.Background()
	chatID := int64(42)
	// 2025-08-31 is a Sunday in week 5; its window is clipped to Aug 25-31.
	suite.today = time.Date(2025, time.August, 31, 9, 0, 0, 0, time.Local)
	start := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.Local)

	suite.mockRepo.On("SumForRange", ctx, chatID, start, end).Return(int64(999), nil).Once()

	report, err := suite.service.WeeklyReport(ctx, chatID)

	suite.Require().NoError(err)
	suite.Equal(5, report.WeekNumber)
	suite.Equal(int64(999), report.Total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestHistory_Empty() {
	ctx := context.Background()
	chatID := int64(42)

	suite.mockRepo.On("ListForDate", ctx, chatID, suite.today, 10).Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.History(ctx, chatID, 10)

	suite.Require().NoError(err)
	suite.Empty(report.Entries)
	suite.Equal(int64(0), report.DailyTotal)
	// No daily sum query for an empty day.
	suite.mockRepo.AssertNotCalled(suite.T(), "SumForDate", ctx, chatID, suite.today)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestHistory_PreservesInsertionOrder() {
	ctx := context.Background()
	chatID := int64(42)
	txns := []domain.Transaction{
		{UserName: "Budi", Amount: 5000, CreatedAt: suite.today.Add(-2 * time.Hour)},
		{UserName: "Sari", Amount: -2000, Note: "refund", CreatedAt: suite.today.Add(-1 * time.Hour)},
	}

	suite.mockRepo.On("ListForDate", ctx, chatID, suite.today, 10).Return(txns, nil).Once()
	suite.mockRepo.On("SumForDate", ctx, chatID, suite.today).Return(int64(3000), nil).Once()

	report, err := suite.service.History(ctx, chatID, 10)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 2)
	suite.Equal("Budi", report.Entries[0].UserName)
	suite.Equal("Sari", report.Entries[1].UserName)
	suite.Equal(int64(3000), report.DailyTotal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReset_Idempotent() {
	ctx := context.Background()
	chatID := int64(42)

	suite.mockRepo.On("DeleteAllForChat", ctx, chatID).Return(nil).Twice()

	suite.Require().NoError(suite.service.Reset(ctx, chatID))
	suite.Require().NoError(suite.service.Reset(ctx, chatID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
