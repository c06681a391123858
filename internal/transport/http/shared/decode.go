package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "posterati/pkg/domain-errors"
)

// maxBodyBytes caps JSON request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. Unknown fields are
// tolerated; bodies over 1 MiB are rejected before they are buffered.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return dErrors.New(dErrors.CodeValidation, "Request body must not exceed 1MB.")
		}
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
