package pgsql

import (
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo: newPgxExpenseRepository(dbPool),
		BudgetRepo:  newPgxBudgetGoalRepository(dbPool),
		IncomeRepo:  newPgxIncomeStreamRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
