package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"posterati/internal/transport/http/shared"
	"posterati/pkg/requestcontext"
)

// Recovery converts panics into 500 responses. The stack trace goes to the
// log; the client sees only the generic envelope.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", requestcontext.RequestID(r.Context()),
						"stack", string(debug.Stack()),
					)
					shared.WriteFail(w, http.StatusInternalServerError, "Something went very wrong!")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
