package domain

import "errors"

var (
	ErrNotFound       = errors.New("profile not found")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrMissingUserID  = errors.New("user id is required")
	ErrConflict       = errors.New("profile was updated concurrently")
)
