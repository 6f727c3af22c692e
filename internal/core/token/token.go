// Package token issues and validates the signed bearer tokens that carry a
// caller's identity and role flags between requests. Tokens are stateless:
// nothing is stored server-side and expiry is purely time based.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

const defaultTTL = 20 * time.Minute

// Claims is the fixed shape of everything embedded in a token. The username
// travels as the registered "sub" claim.
type Claims struct {
	UserID     uint `json:"id"`
	IsAdmin    bool `json:"is_admin"`
	IsSupplier bool `json:"is_supplier"`
	IsCustomer bool `json:"is_customer"`
	jwt.RegisteredClaims
}

// Username returns the subject the token was issued for.
func (c *Claims) Username() string {
	return c.Subject
}

// Manager signs and verifies tokens with a process-wide HS256 secret injected
// at construction. Issue and Validate are pure and safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret. If ttl <= 0 the default
// of 20 minutes applies.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the lifetime applied to issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for user expiring at issued-at + TTL.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin,
		IsSupplier: user.IsSupplier,
		IsCustomer: user.IsCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate verifies a token and returns its claims. The signature is checked
// before any embedded field is trusted, so a forged expiry cannot bypass
// validation. Failure modes, in order:
//   - bad signature, wrong algorithm or structural corruption → ErrTokenInvalid
//   - missing subject, user id or expiry claim → ErrTokenInvalid
//   - current time at or past expiry → ErrTokenExpired
func (m *Manager) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Strict decoding rejects base64 segments with set padding bits, so
		// a single flipped bit anywhere in the token cannot slip through.
		jwt.WithStrictDecoding(),
		// Expiry is checked by hand below so that a token missing its
		// required claims reports invalid, not expired.
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !tok.Valid {
		return nil, domain.ErrTokenInvalid
	}

	if claims.Subject == "" || claims.UserID == 0 || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenInvalid
	}

	if !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, domain.ErrTokenExpired
	}

	return claims, nil
}

func (m *Manager) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, errors.New("unexpected signing method")
	}
	return m.secret, nil
}
