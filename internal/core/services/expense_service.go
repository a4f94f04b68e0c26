package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/abhishekvarma12345/money-maven-goals/internal/utils/pagination"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense validates and persists a new expense for the user.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Amount:      req.Amount,
		Category:    category,
		Description: req.Description,
		Date:        req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", string(expense.Category)))
	return &expense, nil
}

// ListExpenses returns a page of the user's expenses inside the trailing
// window, newest first. The returned token resumes after the last expense
// of a full page; a nil token means the listing is exhausted.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, months int, limit int, nextToken string, now time.Time) ([]domain.Expense, *string, error) {
	if months < 1 {
		return nil, nil, fmt.Errorf("%w: window must be at least one month", apperrors.ErrValidation)
	}
	if limit < 1 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}

	var afterDate, afterCreatedAt time.Time
	if nextToken != "" {
		var err error
		afterDate, afterCreatedAt, err = pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	expenses, err := s.expenseRepo.FindExpensesPaginated(ctx, userID, windowStart(now, months), limit, afterDate, afterCreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var token *string
	if len(expenses) == limit {
		last := expenses[len(expenses)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}

	s.LogInfo(ctx, "Expenses listed",
		slog.String("user_id", userID),
		slog.Int("count", len(expenses)))
	return expenses, token, nil
}

// DeleteExpense removes an expense after verifying ownership.
func (s *expenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.UserID != userID {
		s.LogInfo(ctx, "Expense delete refused: not owner",
			slog.String("expense_id", expenseID),
			slog.String("user_id", userID))
		return apperrors.ErrForbidden
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
