package services

import (
	"context"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
)

// IncomeSvcFacade defines income stream management and normalization.
type IncomeSvcFacade interface {
	// CreateStream validates and persists a new income stream for the user.
	CreateStream(ctx context.Context, userID string, req dto.CreateIncomeStreamRequest) (*domain.IncomeStream, error)

	// ListStreams returns all income streams of the user.
	ListStreams(ctx context.Context, userID string) ([]domain.IncomeStream, error)

	// DeleteStream removes an income stream after verifying ownership.
	DeleteStream(ctx context.Context, userID string, streamID string) error

	// Summary folds all streams into combined monthly- and
	// annual-equivalent totals using the fixed frequency factors.
	Summary(ctx context.Context, userID string) (*domain.IncomeSummary, error)
}
