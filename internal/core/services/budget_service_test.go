package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetGoalRepository ---
type MockBudgetGoalRepository struct {
	mock.Mock
}

func (m *MockBudgetGoalRepository) SaveGoal(ctx context.Context, goal domain.BudgetGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockBudgetGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.BudgetGoal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetGoal), args.Error(1)
}

func (m *MockBudgetGoalRepository) FindGoalsByUser(ctx context.Context, userID string) ([]domain.BudgetGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetGoal), args.Error(1)
}

func (m *MockBudgetGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetGoalRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetGoalRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockExpenseRepo)
}

func goal(category domain.Category, target string) domain.BudgetGoal {
	return domain.BudgetGoal{
		GoalID:       uuid.NewString(),
		UserID:       "user-1",
		Category:     category,
		TargetAmount: decimal.RequireFromString(target),
		Period:       domain.PeriodMonthly,
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetGoalRequest{
		Category:     "food",
		TargetAmount: decimal.NewFromInt(400),
		Period:       "monthly",
	}

	suite.mockBudgetRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.BudgetGoal) bool {
		return g.Category == domain.CategoryFood && g.Period == domain.PeriodMonthly &&
			g.TargetAmount.Equal(req.TargetAmount) && g.UserID == "user-1" && g.GoalID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateGoal(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.CategoryFood, created.Category)
	suite.Equal("user-1", created.CreatedBy)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateGoal_InvalidPeriod() {
	ctx := context.Background()
	req := dto.CreateBudgetGoalRequest{
		Category:     "food",
		TargetAmount: decimal.NewFromInt(400),
		Period:       "weekly",
	}

	created, err := suite.service.CreateGoal(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateBudgetGoalRequest{
		Category:     "food",
		TargetAmount: decimal.Zero,
		Period:       "monthly",
	}

	created, err := suite.service.CreateGoal(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestEvaluate_NoGoalsNoExpenses() {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	suite.mockBudgetRepo.On("FindGoalsByUser", ctx, "user-1").Return([]domain.BudgetGoal{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{}, nil).Once()

	report, err := suite.service.Evaluate(ctx, "user-1", 3, now)

	suite.Require().NoError(err)
	suite.True(report.TotalBudget.IsZero())
	suite.True(report.TotalExpenses.IsZero())
	// A zero budget must read as 0% used, not a division error.
	suite.Equal(0, report.BudgetUsedPercentage)
	suite.True(report.RemainingBudget.IsZero())
	suite.Empty(report.Goals)
}

func (suite *BudgetServiceTestSuite) TestEvaluate_OverspendCapsAndFloors() {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	goals := []domain.BudgetGoal{goal(domain.CategoryFood, "100")}
	expenses := []domain.Expense{
		expense(domain.CategoryFood, "250", time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockBudgetRepo.On("FindGoalsByUser", ctx, "user-1").Return(goals, nil).Once()
	suite.mockExpenseRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(expenses, nil).Once()

	report, err := suite.service.Evaluate(ctx, "user-1", 3, now)

	suite.Require().NoError(err)
	suite.Equal(100, report.BudgetUsedPercentage)
	suite.True(report.RemainingBudget.IsZero())

	// The per-goal figures stay uncapped so overspend is visible.
	suite.Require().Len(report.Goals, 1)
	suite.Equal(250, report.Goals[0].UsedPercentage)
	suite.True(report.Goals[0].Remaining.Equal(decimal.NewFromInt(-150)))
	suite.Equal(domain.TierCritical, report.Goals[0].Tier)
}

func (suite *BudgetServiceTestSuite) TestEvaluate_Tiers() {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	goals := []domain.BudgetGoal{
		goal(domain.CategoryFood, "100"),
		goal(domain.CategoryTravel, "100"),
		goal(domain.CategoryHousing, "100"),
	}
	expenses := []domain.Expense{
		expense(domain.CategoryFood, "75", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryTravel, "76", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryHousing, "91", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockBudgetRepo.On("FindGoalsByUser", ctx, "user-1").Return(goals, nil).Once()
	suite.mockExpenseRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(expenses, nil).Once()

	report, err := suite.service.Evaluate(ctx, "user-1", 3, now)

	suite.Require().NoError(err)
	suite.Require().Len(report.Goals, 3)
	suite.Equal(domain.TierNormal, report.Goals[0].Tier)   // exactly 75%
	suite.Equal(domain.TierWarning, report.Goals[1].Tier)  // 76%
	suite.Equal(domain.TierCritical, report.Goals[2].Tier) // 91%
}

func (suite *BudgetServiceTestSuite) TestEvaluate_DuplicateGoalsCountIndependently() {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	goals := []domain.BudgetGoal{
		goal(domain.CategoryFood, "200"),
		goal(domain.CategoryFood, "400"),
	}
	expenses := []domain.Expense{
		expense(domain.CategoryFood, "100", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockBudgetRepo.On("FindGoalsByUser", ctx, "user-1").Return(goals, nil).Once()
	suite.mockExpenseRepo.On("FindExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(expenses, nil).Once()

	report, err := suite.service.Evaluate(ctx, "user-1", 3, now)

	suite.Require().NoError(err)
	suite.True(report.TotalBudget.Equal(decimal.NewFromInt(600)))
	suite.Require().Len(report.Goals, 2)
	// Both goals see the full category spend.
	suite.True(report.Goals[0].Spent.Equal(decimal.NewFromInt(100)))
	suite.True(report.Goals[1].Spent.Equal(decimal.NewFromInt(100)))
	suite.Equal(50, report.Goals[0].UsedPercentage)
	suite.Equal(25, report.Goals[1].UsedPercentage)
}

func (suite *BudgetServiceTestSuite) TestDeleteGoal_NotOwner() {
	ctx := context.Background()
	existing := goal(domain.CategoryFood, "100")

	suite.mockBudgetRepo.On("FindGoalByID", ctx, existing.GoalID).Return(&existing, nil).Once()

	err := suite.service.DeleteGoal(ctx, "someone-else", existing.GoalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "DeleteGoal", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestDeleteGoal_NotFound() {
	ctx := context.Background()
	goalID := uuid.NewString()

	suite.mockBudgetRepo.On("FindGoalByID", ctx, goalID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteGoal(ctx, "user-1", goalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
