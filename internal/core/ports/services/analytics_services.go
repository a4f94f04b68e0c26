package services

import (
	"context"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// AnalyticsSvcFacade is the aggregation engine: it turns the raw expense
// snapshot into category totals, the monthly series and summary figures.
//
// The reference time is an explicit parameter so the computation is a pure
// function of (snapshot, window, now): identical inputs produce identical
// output across runs.
type AnalyticsSvcFacade interface {
	// SpendingSummary aggregates the user's expenses over the trailing
	// window of the given number of months ending at now.
	SpendingSummary(ctx context.Context, userID string, months int, now time.Time) (*domain.SpendingSummary, error)
}
