package services

import (
	"errors"
)

var (
	// ErrNotFound covers both a missing record and a record the caller may not touch.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when an anonymous user attempts a write.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUserExists is returned on signup with a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when username or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a field-level rejection of user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
