package services

import (
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Analytics comes first since the insight service derives from it
	container.Analytics = NewAnalyticsService(repos.ExpenseRepo)

	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.ExpenseRepo)
	container.Insight = NewInsightService(container.Analytics)
	container.Income = NewIncomeService(repos.IncomeRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
