// Package handler exposes the account endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"posterati/internal/auth/models"
	"posterati/internal/auth/service"
	"posterati/internal/transport/http/shared"
	"posterati/pkg/domain"
	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the account operations the handler depends on.
type Service interface {
	Signup(ctx context.Context, username, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	GetUserByID(ctx context.Context, id domain.UserID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Handler handles the /users endpoints.
type Handler struct {
	svc       Service
	logger    *slog.Logger
	responder *shared.Responder
}

// New creates an account Handler.
func New(svc Service, logger *slog.Logger, responder *shared.Responder) *Handler {
	return &Handler{svc: svc, logger: logger, responder: responder}
}

// Register mounts the account routes. Signup and login are public; the
// rest sit behind requireAuth.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", h.handleSignup)
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.handleListUsers)
			r.Get("/me", h.handleCurrentUser)
		})
	})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.svc.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusCreated, "User registered successfully", result)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "Login successful", result)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// handleCurrentUser returns the profile of the authenticated caller.
func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		// Unreachable when RequireAuth is configured on the route.
		h.logger.ErrorContext(ctx, "user id missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		h.responder.Error(w, r, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	user, err := h.svc.GetUserByID(ctx, userID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.Success(w, http.StatusOK, "User profile retrieved", user)
}
