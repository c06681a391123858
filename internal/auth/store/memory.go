// Package store provides user persistence. Two implementations exist: an
// in-memory store for development and tests, and a PostgreSQL store for
// production. Both return pkg/platform/sentinel errors, never HTTP-shaped
// ones.
package store

import (
	"context"
	"sync"

	"posterati/internal/auth/models"
	"posterati/pkg/domain"
	"posterati/pkg/platform/sentinel"
)

// InMemory keeps users in maps guarded by a RWMutex. Email and username
// indexes hold normalized (lowercased) keys so uniqueness is
// case-insensitive, matching the PostgreSQL unique indexes.
type InMemory struct {
	mu         sync.RWMutex
	users      map[domain.UserID]models.User
	byEmail    map[string]domain.UserID
	byUsername map[string]domain.UserID
}

// NewInMemory constructs an empty in-memory user store.
func NewInMemory() *InMemory {
	return &InMemory{
		users:      make(map[domain.UserID]models.User),
		byEmail:    make(map[string]domain.UserID),
		byUsername: make(map[string]domain.UserID),
	}
}

// Create inserts a new user. Returns sentinel.ErrConflict when the email or
// username is already taken.
func (s *InMemory) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := models.NormalizeEmail(user.Email)
	username := models.NormalizeUsername(user.Username)
	if _, exists := s.byEmail[email]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.byUsername[username]; exists {
		return sentinel.ErrConflict
	}

	s.users[user.ID] = *user
	s.byEmail[email] = user.ID
	s.byUsername[username] = user.ID
	return nil
}

// FindByID returns the user with the given ID or sentinel.ErrNotFound.
func (s *InMemory) FindByID(_ context.Context, id domain.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &user, nil
}

// FindByEmail returns the user with the given email (case-insensitive) or
// sentinel.ErrNotFound. The returned record includes the password digest.
func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

// FindByEmailOrUsername returns the first user matching either identifier,
// checking email first. Signup uses this single existence query to decide
// which field collided.
func (s *InMemory) FindByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.byEmail[models.NormalizeEmail(email)]; ok {
		user := s.users[id]
		return &user, nil
	}
	if id, ok := s.byUsername[models.NormalizeUsername(username)]; ok {
		user := s.users[id]
		return &user, nil
	}
	return nil, sentinel.ErrNotFound
}

// List returns all users in unspecified order.
func (s *InMemory) List(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		u := user
		users = append(users, &u)
	}
	return users, nil
}
