package policy_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// fakeRepo resolves actors from a fixed map.
type fakeRepo struct {
	actors map[string]ability.Actor
	err    error
}

func (r *fakeRepo) FindActor(_ context.Context, id string) (ability.Actor, bool, error) {
	if r.err != nil {
		return ability.Actor{}, false, r.err
	}

	actor, ok := r.actors[id]

	return actor, ok, nil
}

func newService(admins, customers map[string]ability.Actor) *policy.Service {
	return policy.NewService(
		&fakeRepo{actors: admins},
		&fakeRepo{actors: customers},
		ability.DefaultRegistry(),
	)
}

func TestVerifyAbilities(t *testing.T) {
	svc := newService(
		map[string]ability.Actor{"a1": {ID: "a1", Role: models.RoleAdmin}},
		map[string]ability.Actor{"c1": {ID: "c1", Role: models.RoleCustomer}},
	)

	tests := []struct {
		name    string
		check   policy.Check
		wantErr error
	}{
		{
			name: "admin manages customers",
			check: policy.Check{
				UserID: "a1",
				Action: ability.ActionDelete,
				Subject: ability.Subject{
					Type:   ability.SubjectCustomer,
					Fields: map[string]string{"id": "c1"},
				},
			},
		},
		{
			name: "customer reads own record",
			check: policy.Check{
				UserID: "c1",
				Action: ability.ActionGet,
				Subject: ability.Subject{
					Type:   ability.SubjectCustomer,
					Fields: map[string]string{"id": "c1"},
				},
			},
		},
		{
			name: "customer denied on foreign phone",
			check: policy.Check{
				UserID: "c1",
				Action: ability.ActionDelete,
				Subject: ability.Subject{
					Type:   ability.SubjectPhone,
					Fields: map[string]string{"userId": "c2", "userRole": "CUSTOMER"},
				},
			},
			wantErr: policy.ErrNotAllowed,
		},
		{
			name: "admin denied on another admin's inbox",
			check: policy.Check{
				UserID: "a1",
				Action: ability.ActionRead,
				Subject: ability.Subject{
					Type:   ability.SubjectNotification,
					Fields: map[string]string{"recipientId": "a2", "recipientRole": "ADMIN"},
				},
			},
			wantErr: policy.ErrNotAllowed,
		},
		{
			name: "unknown user",
			check: policy.Check{
				UserID:  "ghost",
				Action:  ability.ActionGet,
				Subject: ability.Subject{Type: ability.SubjectCustomer},
			},
			wantErr: policy.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyAbilities(context.Background(), tt.check)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBuildAbilityResolvesAdminsFirst(t *testing.T) {
	// same id in both tables: the admin row wins
	svc := newService(
		map[string]ability.Actor{"u1": {ID: "u1", Role: models.RoleAdmin}},
		map[string]ability.Actor{"u1": {ID: "u1", Role: models.RoleCustomer}},
	)

	a, err := svc.BuildAbility(context.Background(), "u1")
	require.NoError(t, err)

	// only the admin ability may manage arbitrary customers
	assert.True(t, a.Can(ability.ActionDelete, ability.Subject{
		Type:   ability.SubjectCustomer,
		Fields: map[string]string{"id": "someone"},
	}))
}

func TestBuildAbilityPropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("db down")

	svc := policy.NewService(
		&fakeRepo{err: lookupErr},
		&fakeRepo{},
		ability.DefaultRegistry(),
	)

	_, err := svc.BuildAbility(context.Background(), "u1")
	assert.ErrorIs(t, err, lookupErr)
}
