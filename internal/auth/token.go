package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionTTL is how long an issued session stays valid. There is no
	// revocation list - expiry and cookie deletion are the only ways out.
	SessionTTL = 7 * 24 * time.Hour

	adminRole = "admin"
)

var ErrNoSigningSecret = errors.New("session signing secret is empty")

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and validates the signed admin session tokens. The
// signing secret is fixed at construction and never rotated at runtime;
// rotating it would invalidate every outstanding session.
type TokenService struct {
	secret []byte
	// ability to inject the clock (for expiry unit tests)
	NowFunc func() time.Time
}

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrNoSigningSecret
	}
	return &TokenService{
		secret:  []byte(secret),
		NowFunc: time.Now,
	}, nil
}

// Issue creates a new signed session token carrying a fixed admin role
// claim, valid for SessionTTL from now.
func (ts *TokenService) Issue() (string, error) {
	now := ts.NowFunc()
	claims := sessionClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Validate reports whether the token was signed with the current secret and
// has not expired. Parse errors, signature mismatches and expiry all look
// the same from the outside. Expiry is checked with zero leeway.
func (ts *TokenService) Validate(token string) bool {
	parsed, err := jwt.ParseWithClaims(
		token,
		&sessionClaims{},
		func(*jwt.Token) (interface{}, error) {
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return ts.NowFunc() }),
	)
	return err == nil && parsed.Valid
}
