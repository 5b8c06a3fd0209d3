package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents an end-customer account. Customers own vehicles and
// phones and may only act on their own records, scoped by the permission
// rules for RoleCustomer.
type Customer struct {
	// ID is the unique identifier (uuid) for the customer.
	ID string `gorm:"primaryKey;size:36"`
	// Name is the customer's display name.
	Name string `gorm:"size:100;not null" validate:"required,min=2"`
	// Email is the customer's unique login email.
	Email string `gorm:"unique;size:255;not null" validate:"required,email"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// Role is always RoleCustomer.
	Role Role `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	// Vehicles are the customer's registered vehicles.
	Vehicles []CustomerVehicle `gorm:"foreignKey:CustomerID"`
	// CreatedAt is the timestamp when the customer was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the customer was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer validates the input, hashes the password and returns a new
// Customer with a generated id.
func NewCustomer(name, email, password string) (*Customer, error) {
	customer := &Customer{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: HashPassword(password),
		Role:     RoleCustomer,
	}

	if err := validate.Struct(customer); err != nil {
		return nil, err
	}

	return customer, nil
}
