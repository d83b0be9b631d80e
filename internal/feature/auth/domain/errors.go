// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and are mapped to HTTP
// status codes at the transport boundary.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email
	// already exists. Returned during registration.
	ErrEmailAlreadyExists = errors.New("user already exists with this email")

	// ErrUserNotFound indicates that no user was found with the given
	// criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are
	// incorrect. The same error covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
