package models

import (
	"time"

	"github.com/google/uuid"
)

// PhoneType classifies a phone number.
type PhoneType string

const (
	// PhoneTypeMobile is a mobile number (DDD + 9 digits).
	PhoneTypeMobile PhoneType = "MOBILE"
	// PhoneTypeHome is a landline number (DDD + 8 digits).
	PhoneTypeHome PhoneType = "HOME"
	// PhoneTypeWork is a work number.
	PhoneTypeWork PhoneType = "WORK"
)

// Phone represents a phone number owned by an admin or a customer. The
// owner is referenced by id plus role rather than a foreign key, because
// the two account kinds live in separate tables.
type Phone struct {
	// ID is the unique identifier (uuid) for the phone.
	ID string `gorm:"primaryKey;size:36"`
	// UserID is the id of the owning admin or customer.
	UserID string `gorm:"size:36;not null;index" validate:"required"`
	// UserRole is the role of the owning account; rules for PHONE subjects
	// condition on it.
	UserRole Role `gorm:"type:varchar(20);not null" validate:"required"`
	// Type classifies the number.
	Type PhoneType `gorm:"type:varchar(10);not null" validate:"required,oneof=MOBILE HOME WORK"`
	// Number is the Brazilian number including DDD, 9 to 11 digits.
	Number string `gorm:"size:11;not null" validate:"required,br_phone"`
	// IsWhatsapp indicates the number is registered with WhatsApp.
	IsWhatsapp bool `gorm:"not null;default:false"`
	// CreatedAt is the timestamp when the phone was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the phone was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Phone model.
func (Phone) TableName() string {
	return "phones"
}

// NewPhone validates the input and returns a new Phone with a generated id.
func NewPhone(userID string, userRole Role, phoneType PhoneType, number string, isWhatsapp bool) (*Phone, error) {
	phone := &Phone{
		ID:         uuid.NewString(),
		UserID:     userID,
		UserRole:   userRole,
		Type:       phoneType,
		Number:     number,
		IsWhatsapp: isWhatsapp,
	}

	if err := validate.Struct(phone); err != nil {
		return nil, err
	}

	return phone, nil
}
