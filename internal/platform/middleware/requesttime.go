package middleware

import (
	"net/http"
	"time"

	"posterati/pkg/requestcontext"
)

// RequestTime captures the current time at the start of the request so
// every timestamp written within one request observes the same instant.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
