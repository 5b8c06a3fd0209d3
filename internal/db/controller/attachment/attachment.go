// Package attachment provides CRUD operations for uploaded attachments.
package attachment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// ErrAttachmentNotFound is returned when an attachment is not found.
var ErrAttachmentNotFound = errors.New("attachment not found")

// Store persists attachments.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new attachment.
func (s *Store) Create(ctx context.Context, attachment *models.Attachment) error {
	return s.db.WithContext(ctx).Create(attachment).Error
}

// FindByID retrieves an attachment by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.Attachment, error) {
	var attachment models.Attachment

	result := s.db.WithContext(ctx).First(&attachment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, result.Error
	}

	return &attachment, nil
}
