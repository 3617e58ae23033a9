package services

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// UserSvcFacade defines operations for administrative users.
type UserSvcFacade interface {
	// CreateUser persists a new user with a bcrypt password hash.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users ordered by username.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT for the user.
	Login(ctx context.Context, username string, password string) (string, *domain.User, error)
}
