package repositories

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// UserRepositoryFacade defines data access for administrative users.
type UserRepositoryFacade interface {
	// SaveUser persists a new user. A duplicate username surfaces as
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves users ordered by username.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}
