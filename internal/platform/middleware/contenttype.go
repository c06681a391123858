package middleware

import (
	"mime"
	"net/http"

	"posterati/internal/transport/http/shared"
)

// ContentTypeJSON rejects mutation requests whose declared Content-Type is
// not JSON. Requests without a declared type pass through; the body decoder
// still has the final say.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if ct := r.Header.Get("Content-Type"); ct != "" {
				media, _, err := mime.ParseMediaType(ct)
				if err != nil || media != "application/json" {
					shared.WriteFail(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json.")
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
