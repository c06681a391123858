package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterati/internal/auth/token"
	"posterati/pkg/domain"
	"posterati/pkg/requestcontext"
)

func protectedHandler(t *testing.T, sawUserID *domain.UserID) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawUserID = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewService("middleware-test-secret", time.Hour)
	logger := slog.New(slog.DiscardHandler)

	t.Run("valid token passes identity through", func(t *testing.T) {
		userID := domain.NewUserID()
		signed, err := tokens.Issue(userID, "ada@example.com")
		require.NoError(t, err)

		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, saw)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t,
			`{"status":"fail","message":"Authentication required. No token provided."}`,
			rec.Body.String())
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token. Please log in again.")
	})

	t.Run("expired token gets its own message", func(t *testing.T) {
		issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		frozen := token.NewService("middleware-test-secret", time.Hour,
			token.WithClock(func() time.Time { return issuedAt }))
		signed, err := frozen.Issue(domain.NewUserID(), "ada@example.com")
		require.NoError(t, err)

		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Your token has expired. Please log in again.")
	})

	t.Run("token signed with another secret is 401", func(t *testing.T) {
		other := token.NewService("a-different-secret", time.Hour)
		signed, err := other.Issue(domain.NewUserID(), "ada@example.com")
		require.NoError(t, err)

		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("OPTIONS bypasses the check", func(t *testing.T) {
		var saw domain.UserID
		handler := RequireAuth(tokens, logger)(protectedHandler(t, &saw))

		req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
