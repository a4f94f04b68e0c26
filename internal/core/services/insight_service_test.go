package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AnalyticsSvcFacade ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) SpendingSummary(ctx context.Context, userID string, months int, now time.Time) (*domain.SpendingSummary, error) {
	args := m.Called(ctx, userID, months, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpendingSummary), args.Error(1)
}

// --- Test Suite ---
type InsightServiceTestSuite struct {
	suite.Suite
	mockAnalytics *MockAnalyticsService
	service       portssvc.InsightSvcFacade
	now           time.Time
}

func (suite *InsightServiceTestSuite) SetupTest() {
	suite.mockAnalytics = new(MockAnalyticsService)
	suite.service = services.NewInsightService(suite.mockAnalytics)
	suite.now = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func (suite *InsightServiceTestSuite) summaryWithMonths(amounts ...string) *domain.SpendingSummary {
	totals := make([]domain.MonthlyTotal, len(amounts))
	for i, a := range amounts {
		totals[i] = domain.MonthlyTotal{Month: "M", Amount: decimal.RequireFromString(a)}
	}
	return &domain.SpendingSummary{MonthlyTotals: totals}
}

func (suite *InsightServiceTestSuite) expectSummary(s *domain.SpendingSummary) {
	suite.mockAnalytics.On("SpendingSummary", mock.Anything, "user-1", 6, suite.now).Return(s, nil).Once()
}

// --- Test Cases ---

func (suite *InsightServiceTestSuite) TestInsights_DecreasingTrend() {
	suite.expectSummary(suite.summaryWithMonths("1200", "1000"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.TrendDecreasing, insights.MonthlyTrend)
	// (1000-1200)/1200 = -16.67, rounded away from zero.
	suite.Equal(-17, insights.MonthOverMonthChange)
}

func (suite *InsightServiceTestSuite) TestInsights_TenPercentRiseIsStable() {
	// Exactly 10% up. The increase threshold is strict, so this is stable.
	suite.expectSummary(suite.summaryWithMonths("1200", "1320"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.TrendStable, insights.MonthlyTrend)
	suite.Equal(10, insights.MonthOverMonthChange)
}

func (suite *InsightServiceTestSuite) TestInsights_AboveThresholdIsIncreasing() {
	suite.expectSummary(suite.summaryWithMonths("1000", "1101"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.TrendIncreasing, insights.MonthlyTrend)
}

func (suite *InsightServiceTestSuite) TestInsights_ZeroPreviousMonth() {
	suite.expectSummary(suite.summaryWithMonths("0", "500"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Equal(100, insights.MonthOverMonthChange)
	suite.Equal(domain.TrendIncreasing, insights.MonthlyTrend)
}

func (suite *InsightServiceTestSuite) TestInsights_SingleMonth() {
	suite.expectSummary(suite.summaryWithMonths("500"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.TrendStable, insights.MonthlyTrend)
	suite.Equal(0, insights.MonthOverMonthChange)
}

func (suite *InsightServiceTestSuite) TestInsights_SavingsOpportunity() {
	summary := suite.summaryWithMonths("800", "800")
	summary.CategoryTotals = []domain.CategoryTotal{
		{Category: domain.CategoryHousing, Amount: decimal.NewFromInt(955)},
		{Category: domain.CategoryFood, Amount: decimal.NewFromInt(400)},
		{Category: domain.CategoryTravel, Amount: decimal.NewFromInt(150)},
		{Category: domain.CategoryOther, Amount: decimal.NewFromInt(95)},
	}
	suite.expectSummary(summary)

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Len(insights.TopCategories, 3)
	suite.Equal(domain.CategoryHousing, insights.SavingsOpportunity.Category)
	// 20% of 955 is 191.
	suite.True(insights.SavingsOpportunity.Potential.Equal(decimal.NewFromInt(191)))
}

func (suite *InsightServiceTestSuite) TestInsights_NoSpending() {
	suite.expectSummary(suite.summaryWithMonths("0", "0"))

	insights, err := suite.service.Insights(context.Background(), "user-1", 6, suite.now)

	suite.Require().NoError(err)
	suite.Empty(insights.TopCategories)
	suite.Equal(domain.TrendStable, insights.MonthlyTrend)
	suite.Equal(0, insights.MonthOverMonthChange)
	suite.Equal(domain.CategoryOther, insights.SavingsOpportunity.Category)
	suite.True(insights.SavingsOpportunity.Potential.IsZero())
}

func TestInsightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}
