package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a message delivered to an admin or customer.
// Like phones, the recipient is referenced by id plus role because the two
// account kinds live in separate tables.
type Notification struct {
	// ID is the unique identifier (uuid) for the notification.
	ID string `gorm:"primaryKey;size:36"`
	// RecipientID is the id of the receiving admin or customer.
	RecipientID string `gorm:"size:36;not null;index" validate:"required"`
	// RecipientRole is the role of the receiving account.
	RecipientRole Role `gorm:"type:varchar(20);not null" validate:"required"`
	// Title is the short notification headline.
	Title string `gorm:"size:255;not null" validate:"required"`
	// Content is the notification body.
	Content string `gorm:"type:text;not null" validate:"required"`
	// ReadAt is set when the recipient reads the notification; nil while unread.
	ReadAt *time.Time
	// CreatedAt is the timestamp when the notification was sent (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}

// Read stamps the notification as read. Calling it again moves the stamp.
func (n *Notification) Read() {
	now := time.Now()
	n.ReadAt = &now
}

// NewNotification validates the input and returns a new Notification with
// a generated id.
func NewNotification(recipientID string, recipientRole Role, title, content string) (*Notification, error) {
	notification := &Notification{
		ID:            uuid.NewString(),
		RecipientID:   recipientID,
		RecipientRole: recipientRole,
		Title:         title,
		Content:       content,
	}

	if err := validate.Struct(notification); err != nil {
		return nil, err
	}

	return notification, nil
}
