// Package domain holds typed identifiers shared across features.
//
// IDs are distinct uuid.UUID newtypes so a PosterID can never be passed
// where a UserID is expected. Construct them from external input via the
// Parse* functions, which enforce validity at trust boundaries; direct
// casting bypasses validation.
package domain

import (
	"database/sql/driver"

	"github.com/google/uuid"

	dErrors "posterati/pkg/domain-errors"
)

// UserID identifies a user account.
type UserID uuid.UUID

// PosterID identifies a poster record.
type PosterID uuid.UUID

// NewUserID returns a freshly generated user ID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewPosterID returns a freshly generated poster ID.
func NewPosterID() PosterID { return PosterID(uuid.New()) }

// ParseUserID validates external input as a user ID.
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

// ParsePosterID validates external input as a poster ID.
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParsePosterID(s string) (PosterID, error) {
	u, err := parseUUID(s, "poster id")
	return PosterID(u), err
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	return u, nil
}

func (id UserID) String() string { return uuid.UUID(id).String() }
func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText implements encoding.TextMarshaler so IDs serialize as their
// canonical string form rather than a raw byte array.
func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer so IDs persist as UUID columns.
func (id UserID) Value() (driver.Value, error) { return id.String(), nil }

func (id *UserID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id PosterID) String() string { return uuid.UUID(id).String() }
func (id PosterID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id PosterID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *PosterID) UnmarshalText(text []byte) error {
	parsed, err := ParsePosterID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id PosterID) Value() (driver.Value, error) { return id.String(), nil }

func (id *PosterID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = PosterID(u)
	return nil
}
