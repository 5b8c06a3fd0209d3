// Package admin provides CRUD operations for admin accounts.
package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrAdminNotFound is returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// Store persists admins.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new admin.
func (s *Store) Create(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}

// FindByID retrieves an admin by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin

	result := s.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, result.Error
	}

	return &admin, nil
}

// FindByEmail retrieves an admin by email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin

	result := s.db.WithContext(ctx).First(&admin, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, result.Error
	}

	return &admin, nil
}

// FindActor resolves an admin as an acting principal. The boolean is false
// when the id is unknown, without an error, so the policy service can fall
// through to the customers table.
func (s *Store) FindActor(ctx context.Context, id string) (ability.Actor, bool, error) {
	admin, err := s.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return ability.Actor{}, false, nil
		}
		return ability.Actor{}, false, err
	}

	return ability.Actor{ID: admin.ID, Role: admin.Role}, true, nil
}

// Save persists changes to an existing admin.
func (s *Store) Save(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Save(admin).Error
}

// Delete removes an admin.
func (s *Store) Delete(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Delete(admin).Error
}
