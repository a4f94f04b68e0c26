package services

import (
	"context"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// InsightSvcFacade derives trend classification and the flat
// savings-opportunity estimate from aggregation output.
type InsightSvcFacade interface {
	// Insights computes top categories, the monthly trend, the
	// month-over-month change and the savings opportunity for the window.
	Insights(ctx context.Context, userID string, months int, now time.Time) (*domain.SpendingInsights, error)
}
