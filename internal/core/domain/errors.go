package domain

import "errors"

// Error taxonomy. Services return these sentinels; the HTTP layer maps them
// to status codes in one place (internal/api/error_handler.go).
var (
	// ErrUserExists: the username or email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound and ErrWrongPassword are distinct internally but are
	// collapsed to a single "invalid credentials" response at the boundary.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	// ErrInactiveUser: credentials are fine but the account is disabled.
	ErrInactiveUser = errors.New("inactive user")

	// ErrTokenInvalid covers bad signatures, structural corruption and
	// missing required claims. ErrTokenExpired is kept separate so logs can
	// tell "log in again" apart from "tampered/garbage".
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrForbidden        = errors.New("access forbidden")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductExists: another product already uses the slug derived from
	// the submitted name.
	ErrProductExists = errors.New("product already exists")
)
