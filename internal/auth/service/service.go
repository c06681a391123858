// Package service implements account signup, login, and lookup on top of
// pluggable storage, hashing, and token issuance.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mssola/useragent"

	"posterati/internal/auth/models"
	"posterati/internal/platform/metrics"
	"posterati/pkg/domain"
	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/platform/sentinel"
	"posterati/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UserStore,Hasher,TokenIssuer

// UserStore is the persistence boundary for user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id domain.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// Hasher derives and checks password digests.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID domain.UserID, email string) (string, error)
}

// AuthResult is what signup and login hand back: the account (password
// digest omitted from serialization) and a signed token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service holds the account business rules.
type Service struct {
	users   UserStore
	hasher  Hasher
	tokens  TokenIssuer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService wires the account service. metrics may be nil in tests.
func NewService(users UserStore, hasher Hasher, tokens TokenIssuer, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		metrics: m,
		logger:  logger,
	}
}

// Signup registers a new account. Uniqueness is checked with a single
// existence query before the insert; when both identifiers collide the
// email conflict is reported. The store's unique indexes backstop the
// check under concurrent signups.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	normalizedEmail := models.NormalizeEmail(email)
	normalizedUsername := models.NormalizeUsername(username)

	existing, err := s.users.FindByEmailOrUsername(ctx, normalizedEmail, normalizedUsername)
	switch {
	case err == nil:
		return nil, conflictFor(existing, normalizedEmail)
	case errors.Is(err, sentinel.ErrNotFound):
		// identifier is free
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not check account availability")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(username, email, digest, requestcontext.Now(ctx))
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Lost a race with a concurrent signup; re-query to name the field.
			if winner, findErr := s.users.FindByEmailOrUsername(ctx, normalizedEmail, normalizedUsername); findErr == nil {
				return nil, conflictFor(winner, normalizedEmail)
			}
			return nil, dErrors.New(dErrors.CodeConflict, "Email address is already in use.")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not create user")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not issue token")
	}

	s.metrics.IncrementSignups()
	s.logger.InfoContext(ctx, "user signed up",
		"user_id", user.ID.String(),
		"username", user.Username,
		"request_id", requestcontext.RequestID(ctx),
	)
	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the identical error so the response carries no
// user-enumeration signal.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not look up user")
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		return nil, invalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not issue token")
	}

	s.metrics.IncrementLogins()
	s.logger.InfoContext(ctx, "user logged in",
		append([]any{
			"user_id", user.ID.String(),
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
		}, deviceAttrs(ctx)...)...,
	)
	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID fetches a single account.
// Errors: CodeNotFound when no such user exists.
func (s *Service) GetUserByID(ctx context.Context, id domain.UserID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("User with ID %s not found.", id))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not look up user")
	}
	return user, nil
}

// ListUsers returns every registered account.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list users")
	}
	return users, nil
}

func conflictFor(existing *models.User, normalizedEmail string) error {
	if existing.Email == normalizedEmail {
		return dErrors.New(dErrors.CodeConflict, "Email address is already in use.")
	}
	return dErrors.New(dErrors.CodeConflict, "Username is already taken.")
}

func invalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "Invalid email or password.")
}

// deviceAttrs summarizes the caller's user agent for the login audit log.
func deviceAttrs(ctx context.Context) []any {
	raw := requestcontext.UserAgent(ctx)
	if raw == "" {
		return nil
	}
	ua := useragent.New(raw)
	browser, version := ua.Browser()
	return []any{
		"browser", browser,
		"browser_version", version,
		"os", ua.OS(),
		"mobile", ua.Mobile(),
	}
}
