package services

import (
	"context"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
)

// BudgetSvcFacade defines budget goal management and evaluation.
type BudgetSvcFacade interface {
	// CreateGoal validates and persists a new budget goal for the user.
	CreateGoal(ctx context.Context, userID string, req dto.CreateBudgetGoalRequest) (*domain.BudgetGoal, error)

	// DeleteGoal removes a goal after verifying ownership.
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// Evaluate combines the user's goals with the window's expense
	// snapshot: total budget, capped utilization percentage, non-negative
	// remaining budget and per-goal spent/tier figures.
	Evaluate(ctx context.Context, userID string, months int, now time.Time) (*domain.BudgetReport, error)
}
