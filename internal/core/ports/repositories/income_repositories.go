package repositories

import (
	"context"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// IncomeStreamRepository defines persistence operations for income streams.
type IncomeStreamRepository interface {
	// SaveStream persists a new income stream.
	SaveStream(ctx context.Context, stream domain.IncomeStream) error

	// FindStreamByID retrieves a single income stream.
	// Returns apperrors.ErrNotFound if no such stream exists.
	FindStreamByID(ctx context.Context, streamID string) (*domain.IncomeStream, error)

	// FindStreamsByUser retrieves all income streams of the user.
	FindStreamsByUser(ctx context.Context, userID string) ([]domain.IncomeStream, error)

	// DeleteStream removes an income stream by ID.
	// Returns apperrors.ErrNotFound if no such stream exists.
	DeleteStream(ctx context.Context, streamID string) error
}
