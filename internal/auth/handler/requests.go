package handler

import (
	"regexp"

	"github.com/asaskevich/govalidator"

	dErrors "posterati/pkg/domain-errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// SignupRequest is the POST /users/signup body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces field shape before the service is invoked. Passwords
// are intentionally not trimmed.
func (r SignupRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "Username is required.")
	}
	if !govalidator.StringLength(r.Username, "3", "30") {
		return dErrors.New(dErrors.CodeValidation, "Username must be between 3 and 30 characters.")
	}
	if !usernamePattern.MatchString(r.Username) {
		return dErrors.New(dErrors.CodeValidation, "Username can only contain letters, numbers, and underscores.")
	}
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address.")
	}
	if len(r.Password) < 8 {
		return dErrors.New(dErrors.CodeValidation, "Password must be at least 8 characters long.")
	}
	return nil
}

// LoginRequest is the POST /users/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address.")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "Password is required.")
	}
	return nil
}
