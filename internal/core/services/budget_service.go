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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvcFacade interface.
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetGoalRepository
	expenseRepo portsrepo.ExpenseRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetGoalRepository, expenseRepo portsrepo.ExpenseRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateGoal validates and persists a new budget goal for the user.
func (s *budgetService) CreateGoal(ctx context.Context, userID string, req dto.CreateBudgetGoalRequest) (*domain.BudgetGoal, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	period, err := domain.ParseBudgetPeriod(req.Period)
	if err != nil {
		return nil, err
	}
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.BudgetGoal{
		GoalID:       uuid.NewString(),
		UserID:       userID,
		Category:     category,
		TargetAmount: req.TargetAmount,
		Period:       period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save budget goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save budget goal: %w", err)
	}

	s.LogInfo(ctx, "Budget goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("category", string(goal.Category)))
	return &goal, nil
}

// DeleteGoal removes a goal after verifying ownership.
func (s *budgetService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	goal, err := s.budgetRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		s.LogInfo(ctx, "Budget goal delete refused: not owner",
			slog.String("goal_id", goalID),
			slog.String("user_id", userID))
		return apperrors.ErrForbidden
	}
	if err := s.budgetRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete budget goal: %w", err)
	}
	return nil
}

// Evaluate combines the user's goals with the window's expense snapshot.
//
// Monthly and annual targets are summed as-is into the total budget; the
// per-goal spent figure covers the evaluation window regardless of the
// goal's declared period. Duplicate goals in the same category each count
// the shared category spend in full.
func (s *budgetService) Evaluate(ctx context.Context, userID string, months int, now time.Time) (*domain.BudgetReport, error) {
	if months < 1 {
		return nil, fmt.Errorf("%w: window must be at least one month", apperrors.ErrValidation)
	}

	goals, err := s.budgetRepo.FindGoalsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budget goals", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch budget goals: %w", err)
	}

	expenses, err := s.expenseRepo.FindExpensesSince(ctx, userID, windowStart(now, months))
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expense snapshot", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch expense snapshot: %w", err)
	}

	report := evaluateBudget(goals, expenses)

	s.LogInfo(ctx, "Budget report computed",
		slog.String("user_id", userID),
		slog.Int("goal_count", len(goals)),
		slog.Int("used_percentage", report.BudgetUsedPercentage))
	return report, nil
}

// evaluateBudget folds goals and the expense snapshot into a budget
// report. Pure function of its inputs.
func evaluateBudget(goals []domain.BudgetGoal, expenses []domain.Expense) *domain.BudgetReport {
	totalExpenses := decimal.Zero
	byCategory := make(map[domain.Category]decimal.Decimal)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	totalBudget := decimal.Zero
	progress := make([]domain.BudgetProgress, len(goals))
	for i, goal := range goals {
		totalBudget = totalBudget.Add(goal.TargetAmount)

		spent := byCategory[goal.Category]
		used := 0
		if goal.TargetAmount.IsPositive() {
			used = int(spent.Div(goal.TargetAmount).Mul(oneHundred).Round(0).IntPart())
		}
		progress[i] = domain.BudgetProgress{
			Goal:           goal,
			Spent:          spent,
			UsedPercentage: used,
			Remaining:      goal.TargetAmount.Sub(spent),
			Tier:           domain.TierForUsage(used),
		}
	}

	usedPercentage := 0
	if totalBudget.IsPositive() {
		usedPercentage = int(totalExpenses.Div(totalBudget).Mul(oneHundred).Round(0).IntPart())
		if usedPercentage > 100 {
			usedPercentage = 100
		}
	}

	remaining := totalBudget.Sub(totalExpenses)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &domain.BudgetReport{
		TotalBudget:          totalBudget,
		TotalExpenses:        totalExpenses,
		BudgetUsedPercentage: usedPercentage,
		RemainingBudget:      remaining,
		Goals:                progress,
	}
}
