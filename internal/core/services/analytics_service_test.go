package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesSince(ctx context.Context, userID string, since time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesPaginated(ctx context.Context, userID string, since time.Time, limit int, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, since, limit, afterDate, afterCreatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Test Suite ---
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.AnalyticsSvcFacade
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

func expense(category domain.Category, amount string, date time.Time) domain.Expense {
	return domain.Expense{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

// --- Test Cases ---

func (suite *AnalyticsServiceTestSuite) TestSpendingSummary_TwoMonthWindow() {
	ctx := context.Background()
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	expenses := []domain.Expense{
		expense(domain.CategoryHousing, "300", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryHousing, "500", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryFood, "100", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("FindExpensesSince", ctx, "user-1", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)).
		Return(expenses, nil).Once()

	summary, err := suite.service.SpendingSummary(ctx, "user-1", 2, now)

	suite.Require().NoError(err)
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(900)))

	suite.Require().Len(summary.CategoryTotals, 2)
	suite.Equal(domain.CategoryHousing, summary.CategoryTotals[0].Category)
	suite.True(summary.CategoryTotals[0].Amount.Equal(decimal.NewFromInt(800)))
	suite.Equal(89, summary.CategoryTotals[0].Percentage)
	suite.Equal("#3b82f6", summary.CategoryTotals[0].Color)
	suite.Equal(domain.CategoryFood, summary.CategoryTotals[1].Category)
	suite.Equal(11, summary.CategoryTotals[1].Percentage)

	suite.Require().Len(summary.MonthlyTotals, 2)
	suite.Equal("Jan 2024", summary.MonthlyTotals[0].Month)
	suite.True(summary.MonthlyTotals[0].Amount.Equal(decimal.NewFromInt(600)))
	suite.Equal("Feb 2024", summary.MonthlyTotals[1].Month)
	suite.True(summary.MonthlyTotals[1].Amount.Equal(decimal.NewFromInt(300)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSpendingSummary_EmptySnapshot() {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{}, nil).Once()

	summary, err := suite.service.SpendingSummary(ctx, "user-1", 6, now)

	suite.Require().NoError(err)
	suite.True(summary.TotalExpenses.IsZero())
	suite.Empty(summary.CategoryTotals)

	// The series stays dense even with no data at all.
	suite.Require().Len(summary.MonthlyTotals, 6)
	suite.Equal("Jan 2024", summary.MonthlyTotals[0].Month)
	suite.Equal("Jun 2024", summary.MonthlyTotals[5].Month)
	for _, mt := range summary.MonthlyTotals {
		suite.True(mt.Amount.IsZero())
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSpendingSummary_OutOfWindowCountsInTotalsOnly() {
	ctx := context.Background()
	now := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	expenses := []domain.Expense{
		expense(domain.CategoryFood, "100", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		// Dated before the window; a repository serving the snapshot by a
		// different cut could still include it.
		expense(domain.CategoryFood, "40", time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(expenses, nil).Once()

	summary, err := suite.service.SpendingSummary(ctx, "user-1", 2, now)

	suite.Require().NoError(err)
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(140)))
	suite.Require().Len(summary.MonthlyTotals, 2)
	suite.True(summary.MonthlyTotals[0].Amount.IsZero())
	suite.True(summary.MonthlyTotals[1].Amount.Equal(decimal.NewFromInt(100)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSpendingSummary_Deterministic() {
	ctx := context.Background()
	now := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)
	expenses := []domain.Expense{
		expense(domain.CategoryTravel, "250.50", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryShopping, "250.50", time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(expenses, nil).Twice()

	first, err := suite.service.SpendingSummary(ctx, "user-1", 3, now)
	suite.Require().NoError(err)
	second, err := suite.service.SpendingSummary(ctx, "user-1", 3, now)
	suite.Require().NoError(err)

	// Equal amounts must not flip order between runs.
	suite.Equal(first, second)
	suite.Equal(domain.CategoryShopping, first.CategoryTotals[0].Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSpendingSummary_InvalidWindow() {
	ctx := context.Background()

	summary, err := suite.service.SpendingSummary(ctx, "user-1", 0, time.Now())

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
