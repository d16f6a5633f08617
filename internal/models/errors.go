package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing, malformed or duplicate input
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an entity that does not exist or is not owned by the caller
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials marks a password that does not match the stored hash
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Specific errors wrap the categories above so handlers can match either level with errors.Is.
var (
	ErrMissingCredentials  = fmt.Errorf("%w: username and password are required", ErrValidation)
	ErrUsernameTaken       = fmt.Errorf("%w: username already taken", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password longer than 72 bytes", ErrValidation)
	ErrSubjectNameRequired = fmt.Errorf("%w: subject name is required", ErrValidation)

	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrSubjectNotFound = fmt.Errorf("subject %w", ErrNotFound)
)
