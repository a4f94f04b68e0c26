package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetGoalRepository struct {
	db *pgxpool.Pool
}

func newPgxBudgetGoalRepository(db *pgxpool.Pool) portsrepo.BudgetGoalRepository {
	return &PgxBudgetGoalRepository{db: db}
}

// Ensure PgxBudgetGoalRepository implements portsrepo.BudgetGoalRepository
var _ portsrepo.BudgetGoalRepository = (*PgxBudgetGoalRepository)(nil)

func (r *PgxBudgetGoalRepository) SaveGoal(ctx context.Context, goal domain.BudgetGoal) error {
	query := `
        INSERT INTO budget_goals (goal_id, user_id, category, target_amount, period, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		goal.GoalID,
		goal.UserID,
		goal.Category,
		goal.TargetAmount,
		goal.Period,
		goal.CreatedAt,
		goal.CreatedBy,
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget goal: %w", err)
	}
	return nil
}

func (r *PgxBudgetGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.BudgetGoal, error) {
	query := `
		SELECT goal_id, user_id, category, target_amount, period, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_goals
		WHERE goal_id = $1;
	`
	var goal domain.BudgetGoal
	err := r.db.QueryRow(ctx, query, goalID).Scan(
		&goal.GoalID,
		&goal.UserID,
		&goal.Category,
		&goal.TargetAmount,
		&goal.Period,
		&goal.CreatedAt,
		&goal.CreatedBy,
		&goal.LastUpdatedAt,
		&goal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget goal by ID %s: %w", goalID, err)
	}
	return &goal, nil
}

func (r *PgxBudgetGoalRepository) FindGoalsByUser(ctx context.Context, userID string) ([]domain.BudgetGoal, error) {
	query := `
		SELECT goal_id, user_id, category, target_amount, period, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_goals
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	goals := []domain.BudgetGoal{}
	for rows.Next() {
		var g domain.BudgetGoal
		err := rows.Scan(
			&g.GoalID,
			&g.UserID,
			&g.Category,
			&g.TargetAmount,
			&g.Period,
			&g.CreatedAt,
			&g.CreatedBy,
			&g.LastUpdatedAt,
			&g.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxBudgetGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM budget_goals WHERE goal_id = $1;`
	tag, err := r.db.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete budget goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
