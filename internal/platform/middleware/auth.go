package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"posterati/internal/auth/token"
	"posterati/internal/transport/http/shared"
	"posterati/pkg/requestcontext"
)

// TokenVerifier validates a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// RequireAuth guards protected routes. A request proceeds only when it
// carries a verifiable bearer token; the verified identity is attached to
// the request context. CORS preflight requests bypass the check
// unconditionally since they carry no credentials.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || raw == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
					"path", r.URL.Path,
				)
				shared.WriteFail(w, http.StatusUnauthorized, "Authentication required. No token provided.")
				return
			}

			identity, err := verifier.Verify(raw)
			if err != nil {
				// The three verification failures are logged distinctly but
				// all answer 401; the client learns nothing about which.
				logger.WarnContext(ctx, "unauthorized access - token rejected",
					"reason", verifyFailureReason(err),
					"request_id", requestID,
					"path", r.URL.Path,
				)
				shared.WriteFail(w, http.StatusUnauthorized, verifyFailureMessage(err))
				return
			}

			ctx = requestcontext.WithUserID(ctx, identity.UserID)
			ctx = requestcontext.WithUserEmail(ctx, identity.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyFailureReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}

func verifyFailureMessage(err error) string {
	if errors.Is(err, token.ErrExpired) {
		return "Your token has expired. Please log in again."
	}
	return "Invalid token. Please log in again."
}
