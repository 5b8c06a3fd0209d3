// Package vehicle provides CRUD operations for customer vehicles.
package vehicle

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrVehicleNotFound is returned when a vehicle is not found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// Store persists customer vehicles.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new vehicle.
func (s *Store) Create(ctx context.Context, vehicle *models.CustomerVehicle) error {
	return s.db.WithContext(ctx).Create(vehicle).Error
}

// FindByID retrieves a vehicle by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.CustomerVehicle, error) {
	var vehicle models.CustomerVehicle

	result := s.db.WithContext(ctx).First(&vehicle, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, result.Error
	}

	return &vehicle, nil
}

// ListByCustomer retrieves all vehicles owned by the given customer.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerVehicle, error) {
	var vehicles []models.CustomerVehicle

	result := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("created_at").Find(&vehicles)
	if result.Error != nil {
		return nil, result.Error
	}

	return vehicles, nil
}

// Save persists changes to an existing vehicle.
func (s *Store) Save(ctx context.Context, vehicle *models.CustomerVehicle) error {
	return s.db.WithContext(ctx).Save(vehicle).Error
}

// Delete removes a vehicle.
func (s *Store) Delete(ctx context.Context, vehicle *models.CustomerVehicle) error {
	return s.db.WithContext(ctx).Delete(vehicle).Error
}
