package repositories

import (
	"context"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user.
	// Returns apperrors.ErrDuplicate if the username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID.
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
