package dto

import (
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one slice of the category distribution chart.
type CategoryTotalResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
	Color      string          `json:"color"`
}

// MonthlyTotalResponse is one point of the spending-over-time chart.
type MonthlyTotalResponse struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendingSummaryResponse is the aggregation engine output for a window.
type SpendingSummaryResponse struct {
	WindowMonths   int                     `json:"windowMonths"`
	TotalExpenses  decimal.Decimal         `json:"totalExpenses"`
	CategoryTotals []CategoryTotalResponse `json:"categoryTotals"`
	MonthlyTotals  []MonthlyTotalResponse  `json:"monthlyTotals"`
}

// SavingsOpportunityResponse is the 20%-reduction heuristic result.
type SavingsOpportunityResponse struct {
	Category  string          `json:"category"`
	Potential decimal.Decimal `json:"potential"`
}

// InsightsResponse is the smart-insights payload.
type InsightsResponse struct {
	TopCategories        []CategoryTotalResponse    `json:"topCategories"`
	MonthlyTrend         string                     `json:"monthlyTrend"`
	MonthOverMonthChange int                        `json:"monthOverMonthChange"`
	SavingsOpportunity   SavingsOpportunityResponse `json:"savingsOpportunity"`
}

// DashboardResponse combines spending, budget and trend figures into the
// single payload the dashboard view renders.
type DashboardResponse struct {
	TotalExpenses        decimal.Decimal         `json:"totalExpenses"`
	MonthOverMonthChange int                     `json:"monthOverMonthChange"`
	TotalBudget          decimal.Decimal         `json:"totalBudget"`
	BudgetUsedPercentage int                     `json:"budgetUsedPercentage"`
	RemainingBudget      decimal.Decimal         `json:"remainingBudget"`
	TopCategory          *CategoryTotalResponse  `json:"topCategory,omitempty"`
	CategoryTotals       []CategoryTotalResponse `json:"categoryTotals"`
	MonthlyTotals        []MonthlyTotalResponse  `json:"monthlyTotals"`
}

// CategoryInfoResponse describes one category for the display layer.
type CategoryInfoResponse struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// ToCategoryTotalResponse converts a domain.CategoryTotal to its DTO.
func ToCategoryTotalResponse(ct *domain.CategoryTotal) CategoryTotalResponse {
	return CategoryTotalResponse{
		Category:   string(ct.Category),
		Amount:     ct.Amount,
		Percentage: ct.Percentage,
		Color:      ct.Color,
	}
}

// ToCategoryTotalResponses converts a slice of domain.CategoryTotal.
func ToCategoryTotalResponses(cts []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(cts))
	for i, ct := range cts {
		responses[i] = ToCategoryTotalResponse(&ct)
	}
	return responses
}

// ToMonthlyTotalResponses converts a slice of domain.MonthlyTotal.
func ToMonthlyTotalResponses(mts []domain.MonthlyTotal) []MonthlyTotalResponse {
	responses := make([]MonthlyTotalResponse, len(mts))
	for i, mt := range mts {
		responses[i] = MonthlyTotalResponse{Month: mt.Month, Amount: mt.Amount}
	}
	return responses
}

// ToSpendingSummaryResponse converts a domain.SpendingSummary to its DTO.
func ToSpendingSummaryResponse(s *domain.SpendingSummary) SpendingSummaryResponse {
	return SpendingSummaryResponse{
		WindowMonths:   s.WindowMonths,
		TotalExpenses:  s.TotalExpenses,
		CategoryTotals: ToCategoryTotalResponses(s.CategoryTotals),
		MonthlyTotals:  ToMonthlyTotalResponses(s.MonthlyTotals),
	}
}

// ToInsightsResponse converts a domain.SpendingInsights to its DTO.
func ToInsightsResponse(ins *domain.SpendingInsights) InsightsResponse {
	return InsightsResponse{
		TopCategories:        ToCategoryTotalResponses(ins.TopCategories),
		MonthlyTrend:         string(ins.MonthlyTrend),
		MonthOverMonthChange: ins.MonthOverMonthChange,
		SavingsOpportunity: SavingsOpportunityResponse{
			Category:  string(ins.SavingsOpportunity.Category),
			Potential: ins.SavingsOpportunity.Potential,
		},
	}
}

// ToDashboardResponse combines a spending summary, a budget report and the
// month-over-month change into the dashboard payload.
func ToDashboardResponse(summary *domain.SpendingSummary, report *domain.BudgetReport, momChange int) DashboardResponse {
	resp := DashboardResponse{
		TotalExpenses:        summary.TotalExpenses,
		MonthOverMonthChange: momChange,
		TotalBudget:          report.TotalBudget,
		BudgetUsedPercentage: report.BudgetUsedPercentage,
		RemainingBudget:      report.RemainingBudget,
		CategoryTotals:       ToCategoryTotalResponses(summary.CategoryTotals),
		MonthlyTotals:        ToMonthlyTotalResponses(summary.MonthlyTotals),
	}
	if len(summary.CategoryTotals) > 0 {
		top := ToCategoryTotalResponse(&summary.CategoryTotals[0])
		resp.TopCategory = &top
	}
	return resp
}

// ToCategoryInfoResponses lists the fixed category metadata table.
func ToCategoryInfoResponses() []CategoryInfoResponse {
	categories := domain.AllCategories()
	responses := make([]CategoryInfoResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryInfoResponse{
			Category: string(c),
			Color:    c.Color(),
			Icon:     c.Icon(),
		}
	}
	return responses
}
