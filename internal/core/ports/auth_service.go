package ports

import (
	"context"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

type AuthService interface {
	// Register persists a new user with a hashed password and default role
	// flags (active customer, not admin, not supplier).
	Register(ctx context.Context, input RegisterInput) error
	// Authenticate resolves credentials to a full user record. Failure modes,
	// in order: ErrUserNotFound, ErrWrongPassword, ErrInactiveUser.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// Login authenticates and issues a bearer token for the user.
	Login(ctx context.Context, username, password string) (string, error)
}
