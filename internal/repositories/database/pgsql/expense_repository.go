package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
        INSERT INTO expenses (expense_id, user_id, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date,
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`
	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, expenseID).Scan(
		&expense.ExpenseID,
		&expense.UserID,
		&expense.Amount,
		&expense.Category,
		&expense.Description,
		&expense.Date,
		&expense.CreatedAt,
		&expense.CreatedBy,
		&expense.LastUpdatedAt,
		&expense.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpensesSince(ctx context.Context, userID string, since time.Time) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *PgxExpenseRepository) FindExpensesPaginated(ctx context.Context, userID string, since time.Time, limit int, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE user_id = $1 AND date >= $2
	`
	args := []interface{}{userID, since}
	if !afterDate.IsZero() {
		// Resume strictly after the last row of the previous page.
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, afterDate, afterCreatedAt)
	}
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT %d;`, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense page for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`
	tag, err := r.db.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		err := rows.Scan(
			&e.ExpenseID,
			&e.UserID,
			&e.Amount,
			&e.Category,
			&e.Description,
			&e.Date,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}
