package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment represents an uploaded file. The bytes themselves live in an
// external store; the row keeps the title and the storage URL only.
type Attachment struct {
	// ID is the unique identifier (uuid) for the attachment.
	ID string `gorm:"primaryKey;size:36"`
	// Title is the original file name.
	Title string `gorm:"size:255;not null" validate:"required"`
	// URL points at the stored file.
	URL string `gorm:"size:512;not null" validate:"required,url"`
	// CreatedAt is the timestamp when the attachment was uploaded (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the Attachment model.
func (Attachment) TableName() string {
	return "attachments"
}

// NewAttachment validates the input and returns a new Attachment with a
// generated id.
func NewAttachment(title, url string) (*Attachment, error) {
	attachment := &Attachment{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	}

	if err := validate.Struct(attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

// BreakdownAttachment links an uploaded attachment to a breakdown.
type BreakdownAttachment struct {
	ID           string `gorm:"primaryKey;size:36"`
	BreakdownID  string `gorm:"size:36;not null;index"`
	AttachmentID string `gorm:"size:36;not null;index"`
}

// TableName specifies the database table name for the BreakdownAttachment model.
func (BreakdownAttachment) TableName() string {
	return "breakdown_attachments"
}

// NewBreakdownAttachment returns a new link row with a generated id.
func NewBreakdownAttachment(breakdownID, attachmentID string) BreakdownAttachment {
	return BreakdownAttachment{
		ID:           uuid.NewString(),
		BreakdownID:  breakdownID,
		AttachmentID: attachmentID,
	}
}
