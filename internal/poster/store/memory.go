// Package store provides poster persistence with in-memory and PostgreSQL
// implementations. Both return pkg/platform/sentinel errors.
package store

import (
	"context"
	"sync"

	"posterati/internal/poster/models"
	"posterati/pkg/domain"
	"posterati/pkg/platform/sentinel"
)

// InMemory keeps posters in a map guarded by a RWMutex.
type InMemory struct {
	mu      sync.RWMutex
	posters map[domain.PosterID]models.Poster
}

// NewInMemory constructs an empty in-memory poster store.
func NewInMemory() *InMemory {
	return &InMemory{posters: make(map[domain.PosterID]models.Poster)}
}

func (s *InMemory) Create(_ context.Context, poster *models.Poster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posters[poster.ID]; exists {
		return sentinel.ErrConflict
	}
	s.posters[poster.ID] = *poster
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.PosterID) (*models.Poster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poster, ok := s.posters[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &poster, nil
}

// FindByCreator returns all posters created by the given user. An unknown
// user yields an empty slice, not an error.
func (s *InMemory) FindByCreator(_ context.Context, creator domain.UserID) ([]*models.Poster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posters := make([]*models.Poster, 0)
	for _, poster := range s.posters {
		if poster.Creator == creator {
			p := poster
			posters = append(posters, &p)
		}
	}
	return posters, nil
}

// Update replaces the stored record. Returns sentinel.ErrNotFound when the
// poster no longer exists.
func (s *InMemory) Update(_ context.Context, poster *models.Poster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posters[poster.ID]; !exists {
		return sentinel.ErrNotFound
	}
	s.posters[poster.ID] = *poster
	return nil
}

// Delete removes the poster. Deleting an absent poster is not an error.
func (s *InMemory) Delete(_ context.Context, id domain.PosterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posters, id)
	return nil
}
