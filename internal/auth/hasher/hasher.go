// Package hasher wraps bcrypt password hashing behind a small interface
// surface so the cost factor is configured in one place.
package hasher

import (
	"golang.org/x/crypto/bcrypt"

	dErrors "posterati/pkg/domain-errors"
)

// Hasher derives and checks bcrypt password digests.
type Hasher struct {
	cost int
}

// New builds a Hasher with the given bcrypt cost. Costs outside bcrypt's
// supported range are clamped by the library at hash time.
func New(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a digest from the plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "password must not be empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "hashing password")
	}
	return string(digest), nil
}

// Verify reports whether the plaintext password matches the stored digest.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
