package dto

import (
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetGoalRequest defines the data needed to create a budget goal.
type CreateBudgetGoalRequest struct {
	Category     string          `json:"category" binding:"required,expensecategory"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Period       string          `json:"period" binding:"required,budgetperiod"`
}

// BudgetGoalResponse defines the data returned for a budget goal together
// with its derived utilization figures.
type BudgetGoalResponse struct {
	GoalID         string          `json:"goalID"`
	Category       string          `json:"category"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	Period         string          `json:"period"`
	Spent          decimal.Decimal `json:"spent"`
	UsedPercentage int             `json:"usedPercentage"`
	Remaining      decimal.Decimal `json:"remaining"`
	Tier           string          `json:"tier"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BudgetReportResponse is the evaluated budget picture for a window.
type BudgetReportResponse struct {
	TotalBudget          decimal.Decimal      `json:"totalBudget"`
	TotalExpenses        decimal.Decimal      `json:"totalExpenses"`
	BudgetUsedPercentage int                  `json:"budgetUsedPercentage"`
	RemainingBudget      decimal.Decimal      `json:"remainingBudget"`
	Goals                []BudgetGoalResponse `json:"goals"`
}

// ToBudgetGoalResponse converts a domain.BudgetProgress to BudgetGoalResponse DTO.
func ToBudgetGoalResponse(p *domain.BudgetProgress) BudgetGoalResponse {
	return BudgetGoalResponse{
		GoalID:         p.Goal.GoalID,
		Category:       string(p.Goal.Category),
		TargetAmount:   p.Goal.TargetAmount,
		Period:         string(p.Goal.Period),
		Spent:          p.Spent,
		UsedPercentage: p.UsedPercentage,
		Remaining:      p.Remaining,
		Tier:           string(p.Tier),
		CreatedAt:      p.Goal.CreatedAt,
	}
}

// ToBudgetReportResponse converts a domain.BudgetReport to BudgetReportResponse DTO.
func ToBudgetReportResponse(report *domain.BudgetReport) BudgetReportResponse {
	goals := make([]BudgetGoalResponse, len(report.Goals))
	for i, p := range report.Goals {
		goals[i] = ToBudgetGoalResponse(&p)
	}
	return BudgetReportResponse{
		TotalBudget:          report.TotalBudget,
		TotalExpenses:        report.TotalExpenses,
		BudgetUsedPercentage: report.BudgetUsedPercentage,
		RemainingBudget:      report.RemainingBudget,
		Goals:                goals,
	}
}
