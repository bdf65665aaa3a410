package handlers

import "github.com/go-playground/validator/v10"

// Request DTOs. Validation mirrors what the API documents: short
// emails and passwords are rejected before anything reaches a
// service.

var validate = validator.New()

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,min=6,max=25"`
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Duration    int    `json:"duration" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
	WatchURL    string `json:"watch_url" validate:"required"`
	Artists     []uint `json:"artists" validate:"required,min=1"`
	Genres      []uint `json:"genres" validate:"required,min=1"`
}

// UpdateMovieRequest is a partial update: absent fields stay nil and
// leave the stored value untouched. Absent artists/genres arrays keep
// the association set; empty arrays clear it.
type UpdateMovieRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Duration    *int    `json:"duration" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	WatchURL    *string `json:"watch_url"`
	Artists     []uint  `json:"artists"`
	Genres      []uint  `json:"genres"`
}

type CreateNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
