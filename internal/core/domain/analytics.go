package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed spend for one category over the aggregation
// window, with its share of the grand total and display color.
type CategoryTotal struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"` // round(amount/total*100); 0 when total is 0
	Color      string          `json:"color"`
}

// MonthlyTotal is the summed spend for one calendar month of the window.
type MonthlyTotal struct {
	Month  string          `json:"month"` // Human readable label, e.g. "Mar 2024"
	Amount decimal.Decimal `json:"amount"`
}

// SpendingSummary is the output of one aggregation pass. It is ephemeral:
// recomputed from the raw expense set on every request and never persisted.
type SpendingSummary struct {
	WindowMonths   int             `json:"windowMonths"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"` // Descending by amount
	MonthlyTotals  []MonthlyTotal  `json:"monthlyTotals"`  // Chronological, zero-dense
}

// GoalTier classifies how much of a budget goal has been consumed.
type GoalTier string

const (
	TierNormal   GoalTier = "normal"   // <= 75% used
	TierWarning  GoalTier = "warning"  // > 75% used
	TierCritical GoalTier = "critical" // > 90% used
)

// TierForUsage maps a used percentage to its tier. Thresholds are
// exclusive lower bounds.
func TierForUsage(usedPercentage int) GoalTier {
	switch {
	case usedPercentage > 90:
		return TierCritical
	case usedPercentage > 75:
		return TierWarning
	default:
		return TierNormal
	}
}

// BudgetProgress is one goal with its derived utilization figures.
type BudgetProgress struct {
	Goal           BudgetGoal      `json:"goal"`
	Spent          decimal.Decimal `json:"spent"`          // Window spend in the goal's category
	UsedPercentage int             `json:"usedPercentage"` // Uncapped
	Remaining      decimal.Decimal `json:"remaining"`      // target - spent, may be negative per goal
	Tier           GoalTier        `json:"tier"`
}

// BudgetReport combines aggregate spend with the full goal set.
type BudgetReport struct {
	TotalBudget          decimal.Decimal  `json:"totalBudget"`
	TotalExpenses        decimal.Decimal  `json:"totalExpenses"`
	BudgetUsedPercentage int              `json:"budgetUsedPercentage"` // Capped at 100
	RemainingBudget      decimal.Decimal  `json:"remainingBudget"`      // Never negative
	Goals                []BudgetProgress `json:"goals"`
}

// TrendDirection classifies the most recent month against the prior one.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// SavingsOpportunity is the flat 20%-reduction heuristic applied to the
// top spending category.
type SavingsOpportunity struct {
	Category  Category        `json:"category"`
	Potential decimal.Decimal `json:"potential"`
}

// SpendingInsights is the derived view behind the smart-insights panel.
type SpendingInsights struct {
	TopCategories        []CategoryTotal    `json:"topCategories"` // At most 3
	MonthlyTrend         TrendDirection     `json:"monthlyTrend"`
	MonthOverMonthChange int                `json:"monthOverMonthChange"` // Percent
	SavingsOpportunity   SavingsOpportunity `json:"savingsOpportunity"`
}

// IncomeSummary holds the normalized combined totals for all of a user's
// income streams.
type IncomeSummary struct {
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal  decimal.Decimal `json:"annualTotal"`
}
