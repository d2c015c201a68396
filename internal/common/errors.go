// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad wraps every failure to fetch or parse the dataset.
	ErrDataLoad = errors.New("failed to load dataset")
	// ErrNotFound is returned when a company lookup has no match.
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfig marks a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError carries a message meant for the person at the terminal along
// with the underlying cause.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
