package ability

import "errors"

var (
	// ErrUnknownRole is returned when the registry has no permission
	// definition for a role. This is a programming error: the registry is
	// validated at bootstrap and must never miss a role at request time.
	ErrUnknownRole = errors.New("no permission definition for role")

	// ErrMapping is returned when an entity cannot be projected onto a
	// subject (unknown type, nil pointer, missing id). This is a
	// programming error, not a user-facing failure.
	ErrMapping = errors.New("cannot map entity to subject")
)
