package services

import (
	"context"

	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
)

// UserSvcFacade defines user registration and lookup operations.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the user.
	// It returns apperrors.ErrUnauthorized when the credentials do not match.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
