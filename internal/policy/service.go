// Package policy is the single authorization choke point. Every mutating
// or read operation resolves the acting user here, builds their ability
// and verifies the (action, subject) pair before touching persisted state.
package policy

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
)

// AdminsRepository resolves admin principals.
type AdminsRepository interface {
	FindActor(ctx context.Context, id string) (ability.Actor, bool, error)
}

// CustomersRepository resolves customer principals.
type CustomersRepository interface {
	FindActor(ctx context.Context, id string) (ability.Actor, bool, error)
}

// Service verifies abilities for acting users. It performs no mutation and
// has no side effect beyond logging.
type Service struct {
	admins    AdminsRepository
	customers CustomersRepository
	registry  ability.Registry
}

// NewService creates a policy service over the given principal lookups and
// permission registry.
func NewService(admins AdminsRepository, customers CustomersRepository, registry ability.Registry) *Service {
	return &Service{
		admins:    admins,
		customers: customers,
		registry:  registry,
	}
}

// Check is one (action, subject) pair to verify for a user.
type Check struct {
	UserID  string
	Action  ability.Action
	Subject ability.Subject
}

// BuildAbility resolves the acting user (admins first, then customers) and
// compiles their ability. It fails with ErrResourceNotFound when neither
// table knows the id.
func (s *Service) BuildAbility(ctx context.Context, userID string) (*ability.Ability, error) {
	actor, ok, err := s.admins.FindActor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !ok {
		actor, ok, err = s.customers.FindActor(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if !ok {
		return nil, errors.Wrapf(ErrResourceNotFound, "user %q", userID)
	}

	return s.registry.AbilityFor(actor)
}

// VerifyAbilities checks that the acting user may perform the action on
// the subject. It returns nil on success, ErrResourceNotFound when the
// user does not exist and ErrNotAllowed when the ability denies the pair.
func (s *Service) VerifyAbilities(ctx context.Context, check Check) error {
	userAbility, err := s.BuildAbility(ctx, check.UserID)
	if err != nil {
		return err
	}

	allowed := userAbility.Can(check.Action, check.Subject)

	log.Debug().
		Str("user_id", check.UserID).
		Str("action", string(check.Action)).
		Str("subject_type", string(check.Subject.Type)).
		Bool("allowed", allowed).
		Msg("ability check")

	if !allowed {
		return errors.Wrapf(ErrNotAllowed,
			"user %q may not %s %s", check.UserID, check.Action, check.Subject.Type)
	}

	return nil
}
