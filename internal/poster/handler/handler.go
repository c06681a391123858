// Package handler exposes the poster endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"posterati/internal/poster/models"
	"posterati/internal/poster/service"
	"posterati/internal/transport/http/shared"
	"posterati/pkg/domain"
	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the poster operations the handler depends on.
type Service interface {
	Create(ctx context.Context, input service.NewPosterInput, creator domain.UserID) (*models.Poster, error)
	GetByID(ctx context.Context, id domain.PosterID) (*models.Poster, error)
	ListByCreator(ctx context.Context, creator domain.UserID) ([]*models.Poster, error)
	Update(ctx context.Context, id domain.PosterID, patch models.Patch, requester domain.UserID) (*models.Poster, error)
	Delete(ctx context.Context, id domain.PosterID, requester domain.UserID) error
}

// Handler handles the /posters endpoints.
type Handler struct {
	svc       Service
	logger    *slog.Logger
	responder *shared.Responder
}

// New creates a poster Handler.
func New(svc Service, logger *slog.Logger, responder *shared.Responder) *Handler {
	return &Handler{svc: svc, logger: logger, responder: responder}
}

// Register mounts the poster routes. Reads are public; mutations sit
// behind requireAuth.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/posters", func(r chi.Router) {
		r.Get("/{posterId}", h.handleGetPoster)
		r.Get("/user/{userId}", h.handleGetPostersByUser)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.handleCreatePoster)
			r.Patch("/{posterId}", h.handlePatchPoster)
			r.Delete("/{posterId}", h.handleDeletePoster)
		})
	})
}

func (h *Handler) handleGetPoster(w http.ResponseWriter, r *http.Request) {
	posterID, err := posterIDParam(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	poster, err := h.svc.GetByID(r.Context(), posterID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "Poster retrieved successfully", poster)
}

// handleGetPostersByUser lists a user's posters. A user with no posters
// gets an empty list, not a 404.
func (h *Handler) handleGetPostersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := domain.ParseUserID(chi.URLParam(r, "userId"))
	if err != nil {
		h.responder.Error(w, r, dErrors.New(dErrors.CodeValidation, "Invalid userId format."))
		return
	}

	posters, err := h.svc.ListByCreator(r.Context(), userID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "Posters retrieved successfully", posters)
}

func (h *Handler) handleCreatePoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := h.requester(w, r)
	if !ok {
		return
	}

	var req CreatePosterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := req.Validate(requestcontext.Now(ctx)); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	poster, err := h.svc.Create(ctx, service.NewPosterInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		TrailerURL:  req.TrailerURL,
		Year:        req.Year,
	}, requester)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusCreated, "Poster created successfully", poster)
}

func (h *Handler) handlePatchPoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := h.requester(w, r)
	if !ok {
		return
	}

	posterID, err := posterIDParam(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req PatchPosterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := req.Validate(requestcontext.Now(ctx)); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	poster, err := h.svc.Update(ctx, posterID, req.Patch(), requester)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "Poster updated successfully", poster)
}

func (h *Handler) handleDeletePoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := h.requester(w, r)
	if !ok {
		return
	}

	posterID, err := posterIDParam(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(ctx, posterID, requester); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.NoContent(w)
}

// requester extracts the authenticated user, guarding against a route
// mounted without RequireAuth ever attributing writes to the nil UUID.
func (h *Handler) requester(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	ctx := r.Context()
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "user id missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		h.responder.Error(w, r, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return domain.UserID{}, false
	}
	return userID, true
}

func posterIDParam(r *http.Request) (domain.PosterID, error) {
	posterID, err := domain.ParsePosterID(chi.URLParam(r, "posterId"))
	if err != nil {
		return domain.PosterID{}, dErrors.New(dErrors.CodeValidation, "Invalid posterId format.")
	}
	return posterID, nil
}
