package ports

import (
	"context"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

// UserRepository defines the persistence surface for user accounts.
// Create must surface a username/email uniqueness violation as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
