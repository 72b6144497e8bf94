package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrHandleTaken is returned when the handle belongs to another user
	ErrHandleTaken = errors.New("handle already taken")

	// ErrEmailTaken is returned when the email belongs to another user
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError describes a rejected input field. Handlers translate it to
// a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
