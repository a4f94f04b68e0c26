package services

import (
	"context"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
)

// ExpenseSvcFacade defines expense create/list/delete operations.
// Expenses are immutable: there is no update operation by design of the
// write contract.
type ExpenseSvcFacade interface {
	// CreateExpense validates and persists a new expense for the user.
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses returns a page of the user's expenses within the
	// trailing window of the given number of months, newest first,
	// together with a resume token when more pages exist.
	ListExpenses(ctx context.Context, userID string, months int, limit int, nextToken string, now time.Time) ([]domain.Expense, *string, error)

	// DeleteExpense removes an expense after verifying ownership.
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
}
