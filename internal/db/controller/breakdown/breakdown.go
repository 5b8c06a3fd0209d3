// Package breakdown provides CRUD operations for vehicle breakdowns and
// their attachment links.
package breakdown

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrBreakdownNotFound is returned when a breakdown is not found.
var ErrBreakdownNotFound = errors.New("vehicle breakdown not found")

// Store persists vehicle breakdowns.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a breakdown together with its attachment links in one
// transaction. The caller dispatches the breakdown's queued events after
// this returns successfully.
func (s *Store) Create(ctx context.Context, breakdown *models.VehicleBreakdown) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Attachments").Create(breakdown).Error; err != nil {
			return err
		}

		if len(breakdown.Attachments) > 0 {
			if err := tx.Create(breakdown.Attachments).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID retrieves a breakdown with its attachment links.
func (s *Store) FindByID(ctx context.Context, id string) (*models.VehicleBreakdown, error) {
	var breakdown models.VehicleBreakdown

	result := s.db.WithContext(ctx).Preload("Attachments").First(&breakdown, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreakdownNotFound
		}
		return nil, result.Error
	}

	return &breakdown, nil
}

// ListByVehicle retrieves all breakdowns filed for the given vehicle.
func (s *Store) ListByVehicle(ctx context.Context, vehicleID string) ([]models.VehicleBreakdown, error) {
	var breakdowns []models.VehicleBreakdown

	result := s.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("created_at").Find(&breakdowns)
	if result.Error != nil {
		return nil, result.Error
	}

	return breakdowns, nil
}

// Delete removes a breakdown and its attachment links.
func (s *Store) Delete(ctx context.Context, breakdown *models.VehicleBreakdown) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("breakdown_id = ?", breakdown.ID).
			Delete(&models.BreakdownAttachment{}).Error; err != nil {
			return err
		}

		return tx.Delete(breakdown).Error
	})
}
