package ability

import (
	"github.com/pkg/errors"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// Actor is the role-bearing view of the acting user that permission
// definitions close over.
type Actor struct {
	ID   string
	Role models.Role
}

// Definition declares one role's rules by appending them to the builder.
// Definitions must be pure: same actor in, same rules out.
type Definition func(actor Actor, b *Builder)

// Registry maps each role to its permission definition. It is populated
// once at process start and read-only afterwards.
type Registry map[models.Role]Definition

// AbilityFor compiles the actor's rule set into an Ability. It fails with
// ErrUnknownRole when the registry carries no definition for the actor's
// role; that must never pass silently.
func (r Registry) AbilityFor(actor Actor) (*Ability, error) {
	define, ok := r[actor.Role]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRole, "role %q", actor.Role)
	}

	var b Builder
	define(actor, &b)

	return &Ability{role: actor.Role, rules: b.rules}, nil
}

// Validate checks that every known role has a definition. It runs at
// bootstrap so a missing role aborts startup instead of surfacing as a
// per-request failure.
func (r Registry) Validate() error {
	for _, role := range models.Roles() {
		if _, ok := r[role]; !ok {
			return errors.Wrapf(ErrUnknownRole, "role %q", role)
		}
	}

	return nil
}
