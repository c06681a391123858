// Package shared centralizes the response envelope and domain error
// translation so every endpoint speaks the same JSON dialect:
//
//	success: {"status":"success","message":...,"data":...}
//	failure: {"status":"fail"|"error","message":...}
//
// 4xx failures use status "fail", 5xx use "error". Outside production the
// failure body additionally carries an "error" field with internal detail.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/requestcontext"
)

// Envelope is the uniform response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// Error and Stack are populated only outside production.
	Error string `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

const genericInternalMessage = "Something went very wrong!"

// Responder writes envelopes and translates errors to HTTP responses.
// It is the single place where error taxonomy meets the wire.
type Responder struct {
	logger     *slog.Logger
	production bool
}

// NewResponder builds a Responder. In production, non-operational error
// details are withheld from clients and only logged.
func NewResponder(logger *slog.Logger, production bool) *Responder {
	return &Responder{logger: logger, production: production}
}

// Success writes a success envelope with the given status code.
func (re *Responder) Success(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, Envelope{Status: "success", Message: message, Data: data})
}

// NoContent writes an empty 204 response.
func (re *Responder) NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error translates err into the failure envelope. Operational errors
// (pkg/domain-errors) pass their message and status through; anything else
// collapses to a generic 500, logged with full detail.
func (re *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	code, operational := dErrors.CodeOf(err)
	status := dErrors.HTTPStatus(code)

	env := Envelope{Status: statusWord(status)}
	switch {
	case operational:
		env.Message = dErrors.MessageOf(err)
		if status >= http.StatusInternalServerError {
			re.logger.ErrorContext(ctx, "internal error",
				"error", err.Error(),
				"request_id", requestID,
				"path", r.URL.Path,
			)
			if re.production {
				env.Message = genericInternalMessage
			}
		}
	default:
		re.logger.ErrorContext(ctx, "unhandled error",
			"error", err.Error(),
			"request_id", requestID,
			"path", r.URL.Path,
		)
		env.Message = genericInternalMessage
	}

	if !re.production {
		env.Error = err.Error()
		if status >= http.StatusInternalServerError {
			env.Stack = string(debug.Stack())
		}
	}

	writeJSON(w, status, env)
}

// WriteFail writes an operational failure envelope directly, for callers
// outside the handler layer (middleware) that already know the status.
func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Envelope{Status: statusWord(statusCode), Message: message})
}

func statusWord(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return "error"
	}
	return "fail"
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
