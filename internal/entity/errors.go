package entity

import "errors"

// Domain errors
var (
	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidFormat = errors.New("invalid format")
	ErrNoImages      = errors.New("no image URLs provided")

	// Weather errors
	ErrInvalidDays     = errors.New("days must be at least 1")
	ErrMissingLocation = errors.New("location parameter is required")

	// Generation errors
	ErrMissingCredential = errors.New("API credential is not configured")
	ErrEmptyCompletion   = errors.New("completion response contains no choices")
)
