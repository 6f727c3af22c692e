package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-api/internal/core/domain"
	"github.com/quickcart/commerce-api/internal/core/ports"
	"github.com/quickcart/commerce-api/internal/metrics"
)

// AuthService implements registration, credential checks and token login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register persists a new user with a hashed password and default role flags.
// Uniqueness of username and email is enforced by the store inside the insert,
// so there is no lookup/insert race.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	digest, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	user := &domain.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: digest,
		IsActive:       true,
		IsAdmin:        false,
		IsSupplier:     false,
		IsCustomer:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return domain.ErrUserExists
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", user.Username).Uint("user_id", user.ID).Msg("user registered")
	return nil
}

// Authenticate resolves credentials to a user record. Unknown username and
// wrong password stay distinct here; the HTTP boundary collapses them.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, domain.ErrWrongPassword
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	return user, nil
}

// Login authenticates and issues a claims token for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return "", err
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("username", username).Msg("failed to issue token")
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", username).Msg("login succeeded")
	return tok, nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrWrongPassword):
		return "bad_credentials"
	case errors.Is(err, domain.ErrInactiveUser):
		return "inactive"
	default:
		return "error"
	}
}
