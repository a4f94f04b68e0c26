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
	"github.com/abhishekvarma12345/money-maven-goals/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("42.50"),
		Description: "Groceries",
		Category:    "food",
		Date:        time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == domain.CategoryFood && e.Amount.Equal(req.Amount) &&
			e.UserID == "user-1" && e.ExpenseID != "" && e.Date.Equal(req.Date)
	})).Return(nil).Once()

	created, err := suite.service.CreateExpense(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("Groceries", created.Description)
	suite.Equal("user-1", created.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.NewFromInt(10),
		Description: "Mystery",
		Category:    "gadgets",
		Date:        time.Now(),
	}

	created, err := suite.service.CreateExpense(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.NewFromInt(-5),
		Description: "Refund",
		Category:    "food",
		Date:        time.Now(),
	}

	created, err := suite.service.CreateExpense(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_FullPageReturnsToken() {
	ctx := context.Background()
	now := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	page := []domain.Expense{
		expense(domain.CategoryFood, "30", time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)),
		expense(domain.CategoryTravel, "80", time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)),
	}
	page[1].AuditFields.CreatedAt = time.Date(2024, time.April, 8, 9, 30, 0, 0, time.UTC)

	suite.mockRepo.On("FindExpensesPaginated", ctx, "user-1", mock.AnythingOfType("time.Time"), 2, time.Time{}, time.Time{}).
		Return(page, nil).Once()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, "user-1", 3, 2, "", now)

	suite.Require().NoError(err)
	suite.Len(expenses, 2)
	suite.Require().NotNil(nextToken)

	// Resume position is the last expense of the page.
	date, createdAt, err := pagination.DecodeToken(*nextToken)
	suite.Require().NoError(err)
	suite.True(date.Equal(page[1].Date))
	suite.True(createdAt.Equal(page[1].CreatedAt))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_PartialPageEndsListing() {
	ctx := context.Background()
	now := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	page := []domain.Expense{
		expense(domain.CategoryFood, "30", time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("FindExpensesPaginated", ctx, "user-1", mock.AnythingOfType("time.Time"), 50, time.Time{}, time.Time{}).
		Return(page, nil).Once()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, "user-1", 3, 50, "", now)

	suite.Require().NoError(err)
	suite.Len(expenses, 1)
	suite.Nil(nextToken)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ResumesFromToken() {
	ctx := context.Background()
	now := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	afterDate := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)
	afterCreatedAt := time.Date(2024, time.April, 8, 9, 30, 0, 0, time.UTC)
	token := pagination.EncodeToken(afterDate, afterCreatedAt)

	suite.mockRepo.On("FindExpensesPaginated", ctx, "user-1", mock.AnythingOfType("time.Time"), 50, afterDate, afterCreatedAt).
		Return([]domain.Expense{}, nil).Once()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, "user-1", 3, 50, token, now)

	suite.Require().NoError(err)
	suite.Empty(expenses)
	suite.Nil(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_MalformedToken() {
	ctx := context.Background()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, "user-1", 3, 50, "not-a-token", time.Now())

	suite.Require().Error(err)
	suite.Nil(expenses)
	suite.Nil(nextToken)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotOwner() {
	ctx := context.Background()
	existing := expense(domain.CategoryFood, "30", time.Now())
	existing.ExpenseID = uuid.NewString()

	suite.mockRepo.On("FindExpenseByID", ctx, existing.ExpenseID).Return(&existing, nil).Once()

	err := suite.service.DeleteExpense(ctx, "someone-else", existing.ExpenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	existing := expense(domain.CategoryFood, "30", time.Now())
	existing.ExpenseID = uuid.NewString()

	suite.mockRepo.On("FindExpenseByID", ctx, existing.ExpenseID).Return(&existing, nil).Once()
	suite.mockRepo.On("DeleteExpense", ctx, existing.ExpenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, "user-1", existing.ExpenseID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
