// Package notification provides CRUD operations for notifications.
package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// Store persists notifications.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new notification.
func (s *Store) Create(ctx context.Context, notification *models.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

// FindByID retrieves a notification by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification

	result := s.db.WithContext(ctx).First(&notification, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, result.Error
	}

	return &notification, nil
}

// ListByRecipient retrieves all notifications for the given account,
// newest first.
func (s *Store) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	var notifications []models.Notification

	result := s.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

// Save persists changes to an existing notification.
func (s *Store) Save(ctx context.Context, notification *models.Notification) error {
	return s.db.WithContext(ctx).Save(notification).Error
}
