// Package token issues and verifies the bearer credentials used for
// stateless authentication.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"posterati/pkg/domain"
)

// Verification failures form a closed set. All three map to an
// unauthorized outcome at the boundary but are logged distinctly.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
)

// Identity is the verified subject carried by a valid token.
type Identity struct {
	UserID domain.UserID
	Email  string
}

// Claims is the JWT payload for access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a symmetric secret known
// only to the server.
type Service struct {
	signingKey []byte
	expiry     time.Duration
	clock      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, letting tests verify expiry
// boundaries deterministically.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService builds a token Service with the given secret and lifetime.
func NewService(signingKey string, expiry time.Duration, opts ...Option) *Service {
	s := &Service{
		signingKey: []byte(signingKey),
		expiry:     expiry,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token embedding the user's identifier and email.
func (s *Service) Issue(userID domain.UserID, email string) (string, error) {
	now := s.clock()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Verify parses and validates a token string, returning the embedded
// identity. Failures are exactly one of ErrMalformed, ErrExpired, or
// ErrInvalidSignature.
func (s *Service) Verify(tokenString string) (Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.signingKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrInvalidSignature
		default:
			return Identity{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Identity{}, ErrMalformed
	}

	userID, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return Identity{}, ErrMalformed
	}
	return Identity{UserID: userID, Email: claims.Email}, nil
}
