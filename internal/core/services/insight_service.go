package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// savingsRate is the flat reduction heuristic applied to the top spending
// category. It is not based on any statistical analysis.
var savingsRate = decimal.RequireFromString("0.20")

// increaseThreshold marks a month-over-month rise as an increase only
// when it exceeds 10%; smaller rises are treated as noise while any
// decrease is treated as signal.
var increaseThreshold = decimal.RequireFromString("1.1")

// insightService implements the InsightSvcFacade interface.
type insightService struct {
	BaseService
	analytics portssvc.AnalyticsSvcFacade
}

// NewInsightService creates a new insight service on top of the
// aggregation engine.
func NewInsightService(analytics portssvc.AnalyticsSvcFacade) portssvc.InsightSvcFacade {
	return &insightService{analytics: analytics}
}

// Ensure insightService implements the InsightSvcFacade interface
var _ portssvc.InsightSvcFacade = (*insightService)(nil)

// Insights computes top categories, the monthly trend, the month-over-month
// change and the savings opportunity for the window.
func (s *insightService) Insights(ctx context.Context, userID string, months int, now time.Time) (*domain.SpendingInsights, error) {
	summary, err := s.analytics.SpendingSummary(ctx, userID, months, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spending summary for insights: %w", err)
	}

	insights := deriveInsights(summary)

	s.LogInfo(ctx, "Spending insights computed",
		slog.String("user_id", userID),
		slog.String("trend", string(insights.MonthlyTrend)),
		slog.Int("mom_change", insights.MonthOverMonthChange))
	return insights, nil
}

// deriveInsights turns a spending summary into the insight figures.
// Pure function of its input.
func deriveInsights(summary *domain.SpendingSummary) *domain.SpendingInsights {
	top := summary.CategoryTotals
	if len(top) > 3 {
		top = top[:3]
	}

	// The savings opportunity falls back to a sentinel zero-amount "other"
	// entry when no spending exists, rendered as "no data" downstream.
	opportunity := domain.SavingsOpportunity{
		Category:  domain.CategoryOther,
		Potential: decimal.Zero,
	}
	if len(summary.CategoryTotals) > 0 {
		topCategory := summary.CategoryTotals[0]
		opportunity = domain.SavingsOpportunity{
			Category:  topCategory.Category,
			Potential: topCategory.Amount.Mul(savingsRate).Round(0),
		}
	}

	return &domain.SpendingInsights{
		TopCategories:        top,
		MonthlyTrend:         monthlyTrend(summary.MonthlyTotals),
		MonthOverMonthChange: monthOverMonthChange(summary.MonthlyTotals),
		SavingsOpportunity:   opportunity,
	}
}

// monthlyTrend compares the most recent month to the prior one. The
// threshold is asymmetric: any decrease counts, but an increase must
// exceed 10% strictly.
func monthlyTrend(monthlyTotals []domain.MonthlyTotal) domain.TrendDirection {
	if len(monthlyTotals) < 2 {
		return domain.TrendStable
	}
	latest := monthlyTotals[len(monthlyTotals)-1].Amount
	previous := monthlyTotals[len(monthlyTotals)-2].Amount

	switch {
	case latest.LessThan(previous):
		return domain.TrendDecreasing
	case latest.GreaterThan(previous.Mul(increaseThreshold)):
		return domain.TrendIncreasing
	default:
		return domain.TrendStable
	}
}

// monthOverMonthChange returns round((current-previous)/previous*100).
// A jump from a zero month to a nonzero one reads as a 100% increase;
// fewer than two months of data reads as no change.
func monthOverMonthChange(monthlyTotals []domain.MonthlyTotal) int {
	if len(monthlyTotals) < 2 {
		return 0
	}
	current := monthlyTotals[len(monthlyTotals)-1].Amount
	previous := monthlyTotals[len(monthlyTotals)-2].Amount

	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	return int(current.Sub(previous).Div(previous).Mul(oneHundred).Round(0).IntPart())
}
