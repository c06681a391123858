package shared

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "posterati/pkg/domain-errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestResponder_Success(t *testing.T) {
	re := NewResponder(slog.New(slog.DiscardHandler), true)
	rec := httptest.NewRecorder()

	re.Success(rec, http.StatusCreated, "created", map[string]string{"id": "42"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "created", env.Message)
}

func TestResponder_OperationalError(t *testing.T) {
	re := NewResponder(slog.New(slog.DiscardHandler), true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	re.Error(rec, req, dErrors.New(dErrors.CodeConflict, "Email address is already in use."))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Email address is already in use.", env.Message)
	assert.Empty(t, env.Error)
	assert.Empty(t, env.Stack)
}

// Internal detail must never reach clients in production; outside
// production the body carries the underlying error and a stack.
func TestResponder_InternalErrorDisclosure(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	t.Run("production withholds detail", func(t *testing.T) {
		re := NewResponder(slog.New(slog.DiscardHandler), true)
		rec := httptest.NewRecorder()

		re.Error(rec, req, cause)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, "Something went very wrong!", env.Message)
		assert.Empty(t, env.Error)
		assert.Empty(t, env.Stack)
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	})

	t.Run("development discloses detail", func(t *testing.T) {
		re := NewResponder(slog.New(slog.DiscardHandler), false)
		rec := httptest.NewRecorder()

		re.Error(rec, req, cause)

		env := decode(t, rec)
		assert.Equal(t, "error", env.Status)
		assert.Contains(t, env.Error, "connection refused")
		assert.NotEmpty(t, env.Stack)
	})
}

func TestWriteFail_StatusWord(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFail(rec, http.StatusNotFound, "Url not found!")
	env := decode(t, rec)
	assert.Equal(t, "fail", env.Status)

	rec = httptest.NewRecorder()
	WriteFail(rec, http.StatusInternalServerError, "Something went very wrong!")
	env = decode(t, rec)
	assert.Equal(t, "error", env.Status)
}
