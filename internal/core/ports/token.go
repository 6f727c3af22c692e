package ports

import (
	"github.com/quickcart/commerce-api/internal/core/domain"
	"github.com/quickcart/commerce-api/internal/core/token"
)

// TokenIssuer signs a claims token for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenValidator verifies a raw bearer token and returns its claims.
// Errors are domain.ErrTokenInvalid or domain.ErrTokenExpired.
type TokenValidator interface {
	Validate(raw string) (*token.Claims, error)
}
