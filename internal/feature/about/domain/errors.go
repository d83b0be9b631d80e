// Package domain defines domain-level errors for the about feature.
package domain

import "errors"

var (
	// ErrSectionNotFound indicates that no about section matched the given
	// key or ID.
	ErrSectionNotFound = errors.New("about section not found")

	// ErrValidation is wrapped by input validation failures.
	ErrValidation = errors.New("validation failed")
)
