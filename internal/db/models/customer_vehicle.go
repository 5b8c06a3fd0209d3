package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType classifies a vehicle.
type VehicleType string

const (
	// VehicleTypeCar is a passenger car.
	VehicleTypeCar VehicleType = "CAR"
	// VehicleTypeMotorcycle is a motorcycle.
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	// VehicleTypeTruck is a truck.
	VehicleTypeTruck VehicleType = "TRUCK"
)

// CustomerVehicle represents a vehicle registered by a customer.
type CustomerVehicle struct {
	// ID is the unique identifier (uuid) for the vehicle.
	ID string `gorm:"primaryKey;size:36"`
	// CustomerID is the id of the owning customer.
	CustomerID string `gorm:"size:36;not null;index" validate:"required"`
	// Type classifies the vehicle.
	Type VehicleType `gorm:"type:varchar(12);not null" validate:"required,oneof=CAR MOTORCYCLE TRUCK"`
	// Plate is the Brazilian plate, old (ABC1234) or Mercosur (ABC1D23) format.
	Plate string `gorm:"size:7;not null" validate:"required,br_plate"`
	// Model is the free-form model description (e.g. "Fiat Uno 1.0").
	Model string `gorm:"size:100;not null" validate:"required"`
	// Year is the model year.
	Year string `gorm:"size:4;not null" validate:"required,len=4,numeric"`
	// CreatedAt is the timestamp when the vehicle was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the vehicle was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the CustomerVehicle model.
func (CustomerVehicle) TableName() string {
	return "customer_vehicles"
}

// NewCustomerVehicle validates the input and returns a new CustomerVehicle
// with a generated id.
func NewCustomerVehicle(customerID string, vehicleType VehicleType, plate, model, year string) (*CustomerVehicle, error) {
	vehicle := &CustomerVehicle{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Type:       vehicleType,
		Plate:      plate,
		Model:      model,
		Year:       year,
	}

	if err := validate.Struct(vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}
