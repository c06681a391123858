package handler

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"

	"posterati/internal/poster/models"
	dErrors "posterati/pkg/domain-errors"
)

// Posters cannot predate the first motion picture; a small allowance
// covers announced releases.
const (
	minYear         = 1888
	futureYearSlack = 5
)

func maxYear(now time.Time) int { return now.Year() + futureYearSlack }

// CreatePosterRequest is the POST /posters body. The creator is never
// accepted from the body.
type CreatePosterRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	TrailerURL  string `json:"trailerUrl"`
	Year        int    `json:"year"`
}

func (r CreatePosterRequest) Validate(now time.Time) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if err := validateYear(r.Year, now); err != nil {
		return err
	}
	if !govalidator.IsURL(r.ImageURL) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid image URL.")
	}
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	if err := validateTrailerURL(r.TrailerURL); err != nil {
		return err
	}
	return nil
}

// PatchPosterRequest is the PATCH /posters/{posterId} body. Absent fields
// are left unchanged; present fields are validated with the same rules as
// creation.
type PatchPosterRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	TrailerURL  *string `json:"trailerUrl"`
	Year        *int    `json:"year"`
}

func (r PatchPosterRequest) Validate(now time.Time) error {
	if r.Title != nil {
		if err := validateTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Year != nil {
		if err := validateYear(*r.Year, now); err != nil {
			return err
		}
	}
	if r.ImageURL != nil && !govalidator.IsURL(*r.ImageURL) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid image URL.")
	}
	if r.Description != nil {
		if err := validateDescription(*r.Description); err != nil {
			return err
		}
	}
	if r.TrailerURL != nil {
		if err := validateTrailerURL(*r.TrailerURL); err != nil {
			return err
		}
	}
	return nil
}

// Patch converts the request to the service-layer patch.
func (r PatchPosterRequest) Patch() models.Patch {
	return models.Patch{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		TrailerURL:  r.TrailerURL,
		Year:        r.Year,
	}
}

func validateTitle(title string) error {
	if title == "" {
		return dErrors.New(dErrors.CodeValidation, "Title is required.")
	}
	if !govalidator.StringLength(title, "1", "150") {
		return dErrors.New(dErrors.CodeValidation, "Title cannot exceed 150 characters.")
	}
	return nil
}

func validateYear(year int, now time.Time) error {
	if year < minYear || year > maxYear(now) {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("Year must be a number between %d and %d.", minYear, maxYear(now)))
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > 1000 {
		return dErrors.New(dErrors.CodeValidation, "Description cannot exceed 1000 characters.")
	}
	return nil
}

// Trailer URLs are optional; empty means none.
func validateTrailerURL(trailerURL string) error {
	if trailerURL != "" && !govalidator.IsURL(trailerURL) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid trailer URL.")
	}
	return nil
}
