package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// monthLabelFormat renders a calendar month the way the charts label it,
// e.g. "Mar 2024".
const monthLabelFormat = "Jan 2006"

var oneHundred = decimal.NewFromInt(100)

// analyticsService implements the AnalyticsSvcFacade interface.
type analyticsService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewAnalyticsService creates the aggregation engine backed by the given
// expense repository.
func NewAnalyticsService(repo portsrepo.ExpenseRepository) portssvc.AnalyticsSvcFacade {
	return &analyticsService{expenseRepo: repo}
}

// Ensure analyticsService implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// SpendingSummary aggregates the user's expenses over the trailing window
// of the given number of months ending at now.
func (s *analyticsService) SpendingSummary(ctx context.Context, userID string, months int, now time.Time) (*domain.SpendingSummary, error) {
	if months < 1 {
		return nil, fmt.Errorf("%w: window must be at least one month", apperrors.ErrValidation)
	}

	expenses, err := s.expenseRepo.FindExpensesSince(ctx, userID, windowStart(now, months))
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expense snapshot",
			slog.String("user_id", userID),
			slog.Int("months", months))
		return nil, fmt.Errorf("failed to fetch expense snapshot: %w", err)
	}

	summary := aggregateExpenses(expenses, months, now)

	s.LogInfo(ctx, "Spending summary computed",
		slog.String("user_id", userID),
		slog.Int("months", months),
		slog.Int("expense_count", len(expenses)),
		slog.String("total", summary.TotalExpenses.String()))
	return summary, nil
}

// windowStart returns the first instant of the aggregation window: the
// start of the calendar month (months-1) months before now.
func windowStart(now time.Time, months int) time.Time {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return monthStart.AddDate(0, -(months - 1), 0)
}

// aggregateExpenses folds a fully materialized expense snapshot into the
// spending summary. It is a pure function of (snapshot, months, now).
func aggregateExpenses(expenses []domain.Expense, months int, now time.Time) *domain.SpendingSummary {
	total := decimal.Zero
	byCategory := make(map[domain.Category]decimal.Decimal)

	// Initialize every month of the window with zero so the series stays
	// dense regardless of transaction density.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	byMonth := make(map[string]decimal.Decimal, months)
	labels := make([]string, 0, months)
	for i := months - 1; i >= 0; i-- {
		label := monthStart.AddDate(0, -i, 0).Format(monthLabelFormat)
		byMonth[label] = decimal.Zero
		labels = append(labels, label)
	}

	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)

		// An expense dated outside the initialized window is dropped from
		// the monthly series but still counts toward the totals above.
		label := e.Date.Format(monthLabelFormat)
		if current, ok := byMonth[label]; ok {
			byMonth[label] = current.Add(e.Amount)
		}
	}

	// Walk the fixed category order so equal amounts sort deterministically.
	categoryTotals := make([]domain.CategoryTotal, 0, len(byCategory))
	for _, c := range domain.AllCategories() {
		amount, ok := byCategory[c]
		if !ok {
			continue
		}
		categoryTotals = append(categoryTotals, domain.CategoryTotal{
			Category:   c,
			Amount:     amount,
			Percentage: percentageOf(amount, total),
			Color:      c.Color(),
		})
	}
	sort.SliceStable(categoryTotals, func(i, j int) bool {
		return categoryTotals[i].Amount.GreaterThan(categoryTotals[j].Amount)
	})

	monthlyTotals := make([]domain.MonthlyTotal, len(labels))
	for i, label := range labels {
		monthlyTotals[i] = domain.MonthlyTotal{Month: label, Amount: byMonth[label]}
	}

	return &domain.SpendingSummary{
		WindowMonths:   months,
		TotalExpenses:  total,
		CategoryTotals: categoryTotals,
		MonthlyTotals:  monthlyTotals,
	}
}

// percentageOf returns round(part/whole*100), or 0 when the whole is zero
// so a division-by-zero never reaches the display layer.
func percentageOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Div(whole).Mul(oneHundred).Round(0).IntPart())
}
