package repositories

import (
	"context"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
// Expenses are append-and-delete only; there is no update operation.
type ExpenseRepository interface {
	// SaveExpense persists a new expense record.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves a single expense.
	// Returns apperrors.ErrNotFound if no such expense exists.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpensesSince retrieves every expense of the user with
	// date >= since, ordered by date descending. This is the snapshot the
	// aggregation engine folds over.
	FindExpensesSince(ctx context.Context, userID string, since time.Time) ([]domain.Expense, error)

	// FindExpensesPaginated retrieves a page of the user's expenses with
	// date >= since, ordered by (date, created_at) descending. The token
	// arguments resume after the given position when non-zero.
	FindExpensesPaginated(ctx context.Context, userID string, since time.Time, limit int, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Expense, error)

	// DeleteExpense removes an expense by ID.
	// Returns apperrors.ErrNotFound if no such expense exists.
	DeleteExpense(ctx context.Context, expenseID string) error
}
