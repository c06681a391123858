// Package service implements the poster business rules: creation on behalf
// of the authenticated user, ownership-gated mutation, and idempotent
// deletion.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"posterati/internal/platform/metrics"
	"posterati/internal/poster/models"
	"posterati/pkg/domain"
	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/platform/sentinel"
	"posterati/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PosterStore

// PosterStore is the persistence boundary for poster records.
type PosterStore interface {
	Create(ctx context.Context, poster *models.Poster) error
	FindByID(ctx context.Context, id domain.PosterID) (*models.Poster, error)
	FindByCreator(ctx context.Context, creator domain.UserID) ([]*models.Poster, error)
	Update(ctx context.Context, poster *models.Poster) error
	Delete(ctx context.Context, id domain.PosterID) error
}

// NewPosterInput carries the caller-supplied fields for creation. The
// creator is taken from the request context, never from input.
type NewPosterInput struct {
	Title       string
	Description string
	ImageURL    string
	TrailerURL  string
	Year        int
}

// Service holds the poster business rules.
type Service struct {
	posters PosterStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService wires the poster service. metrics may be nil in tests.
func NewService(posters PosterStore, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{posters: posters, metrics: m, logger: logger}
}

// Create persists a poster owned by the given creator.
func (s *Service) Create(ctx context.Context, input NewPosterInput, creator domain.UserID) (*models.Poster, error) {
	poster := models.NewPoster(input.Title, input.Description, input.ImageURL,
		input.TrailerURL, input.Year, creator, requestcontext.Now(ctx))
	if err := s.posters.Create(ctx, poster); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not create poster")
	}

	s.metrics.IncrementPostersCreated()
	s.logger.InfoContext(ctx, "poster created",
		"poster_id", poster.ID.String(),
		"creator", creator.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return poster, nil
}

// GetByID fetches a single poster.
// Errors: CodeNotFound when no such poster exists.
func (s *Service) GetByID(ctx context.Context, id domain.PosterID) (*models.Poster, error) {
	poster, err := s.posters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("Poster with ID %s not found.", id))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not look up poster")
	}
	return poster, nil
}

// ListByCreator returns all posters created by the given user. An unknown
// or poster-less user yields an empty list, not an error.
func (s *Service) ListByCreator(ctx context.Context, creator domain.UserID) ([]*models.Poster, error) {
	posters, err := s.posters.FindByCreator(ctx, creator)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list posters")
	}
	return posters, nil
}

// Update applies a partial update after verifying the requester owns the
// poster.
// Errors: CodeNotFound when absent, CodeForbidden when owned by someone else.
func (s *Service) Update(ctx context.Context, id domain.PosterID, patch models.Patch, requester domain.UserID) (*models.Poster, error) {
	poster, err := s.posters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("Poster with ID %s not found.", id))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not look up poster")
	}
	if poster.Creator != requester {
		return nil, dErrors.New(dErrors.CodeForbidden, "You are not authorized to update this poster.")
	}

	patch.Apply(poster, requestcontext.Now(ctx))
	if err := s.posters.Update(ctx, poster); err != nil {
		// The poster may have been deleted between the read and the write.
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("Poster with ID %s not found.", id))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not update poster")
	}

	s.metrics.IncrementPostersUpdated()
	s.logger.InfoContext(ctx, "poster updated",
		"poster_id", poster.ID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return poster, nil
}

// Delete removes a poster owned by the requester. An absent poster counts
// as already deleted.
// Errors: CodeForbidden when the poster exists but is owned by someone else.
func (s *Service) Delete(ctx context.Context, id domain.PosterID, requester domain.UserID) error {
	poster, err := s.posters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not look up poster")
	}
	if poster.Creator != requester {
		return dErrors.New(dErrors.CodeForbidden, "You are not authorized to delete this poster.")
	}

	if err := s.posters.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not delete poster")
	}

	s.metrics.IncrementPostersDeleted()
	s.logger.InfoContext(ctx, "poster deleted",
		"poster_id", id.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}
