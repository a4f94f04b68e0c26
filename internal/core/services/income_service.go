package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed frequency conversion factors. Weekly and daily use average
// weeks/days per month and must be reproduced exactly for numeric
// compatibility with existing clients.
var (
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerMonth = decimal.RequireFromString("4.33")
	weeksPerYear  = decimal.NewFromInt(52)
	daysPerMonth  = decimal.RequireFromString("30.42")
	daysPerYear   = decimal.NewFromInt(365)
)

// incomeService implements the IncomeSvcFacade interface.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeStreamRepository
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo portsrepo.IncomeStreamRepository) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: repo}
}

// Ensure incomeService implements the IncomeSvcFacade interface
var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// CreateStream validates and persists a new income stream for the user.
func (s *incomeService) CreateStream(ctx context.Context, userID string, req dto.CreateIncomeStreamRequest) (*domain.IncomeStream, error) {
	frequency, err := domain.ParseIncomeFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	stream := domain.IncomeStream{
		StreamID:  uuid.NewString(),
		UserID:    userID,
		Source:    req.Source,
		Amount:    req.Amount,
		Frequency: frequency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.incomeRepo.SaveStream(ctx, stream); err != nil {
		s.LogError(ctx, err, "Failed to save income stream", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save income stream: %w", err)
	}

	s.LogInfo(ctx, "Income stream created",
		slog.String("stream_id", stream.StreamID),
		slog.String("frequency", string(stream.Frequency)))
	return &stream, nil
}

// ListStreams returns all income streams of the user.
func (s *incomeService) ListStreams(ctx context.Context, userID string) ([]domain.IncomeStream, error) {
	streams, err := s.incomeRepo.FindStreamsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income streams", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list income streams: %w", err)
	}
	if streams == nil {
		return []domain.IncomeStream{}, nil
	}
	return streams, nil
}

// DeleteStream removes an income stream after verifying ownership.
func (s *incomeService) DeleteStream(ctx context.Context, userID string, streamID string) error {
	stream, err := s.incomeRepo.FindStreamByID(ctx, streamID)
	if err != nil {
		return err
	}
	if stream.UserID != userID {
		s.LogInfo(ctx, "Income stream delete refused: not owner",
			slog.String("stream_id", streamID),
			slog.String("user_id", userID))
		return apperrors.ErrForbidden
	}
	if err := s.incomeRepo.DeleteStream(ctx, streamID); err != nil {
		s.LogError(ctx, err, "Failed to delete income stream", slog.String("stream_id", streamID))
		return fmt.Errorf("failed to delete income stream: %w", err)
	}
	return nil
}

// Summary folds all streams into combined monthly- and annual-equivalent
// totals using the fixed frequency factors.
func (s *incomeService) Summary(ctx context.Context, userID string) (*domain.IncomeSummary, error) {
	streams, err := s.incomeRepo.FindStreamsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch income streams", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch income streams: %w", err)
	}

	summary := summarizeIncome(streams)

	s.LogInfo(ctx, "Income summary computed",
		slog.String("user_id", userID),
		slog.Int("stream_count", len(streams)),
		slog.String("monthly_total", summary.MonthlyTotal.String()))
	return summary, nil
}

// summarizeIncome is a simple fold over all streams. Pure function of its
// input.
func summarizeIncome(streams []domain.IncomeStream) *domain.IncomeSummary {
	monthly := decimal.Zero
	annual := decimal.Zero
	for _, stream := range streams {
		m, a := NormalizeIncome(stream.Amount, stream.Frequency)
		monthly = monthly.Add(m)
		annual = annual.Add(a)
	}
	return &domain.IncomeSummary{
		MonthlyTotal: monthly,
		AnnualTotal:  annual,
	}
}

// NormalizeIncome converts a single stream amount into its monthly- and
// annual-equivalent values.
func NormalizeIncome(amount decimal.Decimal, frequency domain.IncomeFrequency) (monthly, annual decimal.Decimal) {
	switch frequency {
	case domain.FrequencyMonthly:
		return amount, amount.Mul(monthsPerYear)
	case domain.FrequencyAnnual:
		return amount.Div(monthsPerYear), amount
	case domain.FrequencyWeekly:
		return amount.Mul(weeksPerMonth), amount.Mul(weeksPerYear)
	case domain.FrequencyDaily:
		return amount.Mul(daysPerMonth), amount.Mul(daysPerYear)
	}
	return decimal.Zero, decimal.Zero
}
