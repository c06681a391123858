// Package models defines the user account record.
package models

import (
	"strings"
	"time"

	"posterati/pkg/domain"
)

// User is a registered account. Username and email are stored lowercased;
// uniqueness is case-insensitive on both. The password digest is never
// serialized.
type User struct {
	ID             domain.UserID `json:"id"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	PasswordDigest string        `json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// NewUser assembles a user record with normalized identifiers and a fresh
// ID. Input validation happens at the transport boundary; the digest must
// already be hashed.
func NewUser(username, email, passwordDigest string, now time.Time) *User {
	return &User{
		ID:             domain.NewUserID(),
		Username:       NormalizeUsername(username),
		Email:          NormalizeEmail(email),
		PasswordDigest: passwordDigest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername lowercases and trims a username for storage and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
