// Package domain defines domain-level errors for the news feature.
package domain

import "errors"

var (
	// ErrNewsNotFound indicates that no article matched the given slug or ID.
	ErrNewsNotFound = errors.New("news article not found")

	// ErrValidation is wrapped by input validation failures; the wrapping
	// message names the offending fields.
	ErrValidation = errors.New("validation failed")
)
