// Package models defines the movie poster record.
package models

import (
	"time"

	"posterati/pkg/domain"
)

// Poster is a movie poster owned by the user who created it. Only the
// creator may update or delete it.
type Poster struct {
	ID          domain.PosterID `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl"`
	TrailerURL  string          `json:"trailerUrl,omitempty"`
	Year        int             `json:"year"`
	Creator     domain.UserID   `json:"creator"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewPoster assembles a poster record with a fresh ID. The creator always
// comes from the authenticated caller, never from the request body.
func NewPoster(title, description, imageURL, trailerURL string, year int, creator domain.UserID, now time.Time) *Poster {
	return &Poster{
		ID:          domain.NewPosterID(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		TrailerURL:  trailerURL,
		Year:        year,
		Creator:     creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch is a partial update. Nil fields are left unchanged; the creator
// and timestamps are never patchable.
type Patch struct {
	Title       *string
	Description *string
	ImageURL    *string
	TrailerURL  *string
	Year        *int
}

// Apply overlays the patch onto the poster and bumps UpdatedAt.
func (p Patch) Apply(poster *Poster, now time.Time) {
	if p.Title != nil {
		poster.Title = *p.Title
	}
	if p.Description != nil {
		poster.Description = *p.Description
	}
	if p.ImageURL != nil {
		poster.ImageURL = *p.ImageURL
	}
	if p.TrailerURL != nil {
		poster.TrailerURL = *p.TrailerURL
	}
	if p.Year != nil {
		poster.Year = *p.Year
	}
	poster.UpdatedAt = now
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil &&
		p.TrailerURL == nil && p.Year == nil
}
