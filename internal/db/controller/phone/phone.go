// Package phone provides CRUD operations for phone records.
package phone

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrPhoneNotFound is returned when a phone is not found.
var ErrPhoneNotFound = errors.New("phone not found")

// Store persists phones.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new phone.
func (s *Store) Create(ctx context.Context, phone *models.Phone) error {
	return s.db.WithContext(ctx).Create(phone).Error
}

// FindByID retrieves a phone by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.Phone, error) {
	var phone models.Phone

	result := s.db.WithContext(ctx).First(&phone, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, result.Error
	}

	return &phone, nil
}

// ListByUser retrieves all phones owned by the given account.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Phone, error) {
	var phones []models.Phone

	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&phones)
	if result.Error != nil {
		return nil, result.Error
	}

	return phones, nil
}

// Save persists changes to an existing phone.
func (s *Store) Save(ctx context.Context, phone *models.Phone) error {
	return s.db.WithContext(ctx).Save(phone).Error
}

// Delete removes a phone.
func (s *Store) Delete(ctx context.Context, phone *models.Phone) error {
	return s.db.WithContext(ctx).Delete(phone).Error
}
