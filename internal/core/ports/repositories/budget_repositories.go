package repositories

import (
	"context"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// BudgetGoalRepository defines persistence operations for budget goals.
type BudgetGoalRepository interface {
	// SaveGoal persists a new budget goal.
	SaveGoal(ctx context.Context, goal domain.BudgetGoal) error

	// FindGoalByID retrieves a single goal.
	// Returns apperrors.ErrNotFound if no such goal exists.
	FindGoalByID(ctx context.Context, goalID string) (*domain.BudgetGoal, error)

	// FindGoalsByUser retrieves all goals of the user, newest first.
	// Duplicate categories are returned as-is; deduplication is a service
	// concern.
	FindGoalsByUser(ctx context.Context, userID string) ([]domain.BudgetGoal, error)

	// DeleteGoal removes a goal by ID.
	// Returns apperrors.ErrNotFound if no such goal exists.
	DeleteGoal(ctx context.Context, goalID string) error
}
