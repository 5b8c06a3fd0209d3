package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a back-office operator account. Admins manage customers,
// their vehicles and phones, scoped by the permission rules for RoleAdmin.
type Admin struct {
	// ID is the unique identifier (uuid) for the admin.
	ID string `gorm:"primaryKey;size:36"`
	// Name is the admin's display name.
	Name string `gorm:"size:100;not null" validate:"required,min=2"`
	// Email is the admin's unique login email.
	Email string `gorm:"unique;size:255;not null" validate:"required,email"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// Role is always RoleAdmin; stored so the policy layer can resolve a
	// principal without knowing which table it came from.
	Role Role `gorm:"type:varchar(20);not null;default:'ADMIN'"`
	// CreatedAt is the timestamp when the admin was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the admin was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Admin model.
func (Admin) TableName() string {
	return "admins"
}

// NewAdmin validates the input, hashes the password and returns a new Admin
// with a generated id.
func NewAdmin(name, email, password string) (*Admin, error) {
	admin := &Admin{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: HashPassword(password),
		Role:     RoleAdmin,
	}

	if err := validate.Struct(admin); err != nil {
		return nil, err
	}

	return admin, nil
}
