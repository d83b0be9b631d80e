// Package domain defines domain-level errors for the courses feature.
package domain

import "errors"

// ErrCourseNotFound indicates that no course matched the given ID.
var ErrCourseNotFound = errors.New("course not found")
