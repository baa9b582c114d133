package client

import "errors"

var (
	ErrGenerate        = errors.New("Failed to generate letter.")
	ErrProfileNotFound = errors.New("Profile not found. Please register your profile.")
	ErrFetchProfile    = errors.New("Failed to fetch profile.")
	ErrInProgress      = errors.New("a letter is already being generated")
)

// APIError carries the error message the server returned for a failed generate call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
