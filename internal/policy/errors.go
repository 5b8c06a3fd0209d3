package policy

import "errors"

var (
	// ErrResourceNotFound is returned when the acting user (or a target
	// resource a use case looked up through this package) does not exist.
	// Callers surface it as a 404-equivalent.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNotAllowed is returned when the ability evaluation denied the
	// requested action. Callers surface it as a 403-equivalent and never
	// retry it.
	ErrNotAllowed = errors.New("not allowed")
)
