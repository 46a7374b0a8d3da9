// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataAnomaly     = errors.New("data anomaly")

	// Database errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEntry    = errors.New("duplicate entry")
	ErrDatabaseCorrupted = errors.New("database corrupted")

	// Import errors.
	ErrNoTransactions = errors.New("no transactions found")
	ErrInvalidAccount = errors.New("invalid account")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
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

// IsUserFacing reports whether err should be shown to the user as-is
// rather than logged as an internal failure.
func IsUserFacing(err error) bool {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return true
	}
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidConfig)
}
