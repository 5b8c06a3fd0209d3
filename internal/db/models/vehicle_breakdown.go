package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GeovaneMT/LavaCar/internal/events"
)

// excerptLen is the number of description characters carried into
// notifications raised for a new breakdown.
const excerptLen = 120

// VehicleBreakdown represents a breakdown filed against a customer vehicle.
// It is the one aggregate in the ERP that raises a domain event: creating a
// breakdown queues a VehicleBreakdownCreated event, flushed by the bus once
// the row is persisted.
type VehicleBreakdown struct {
	events.Recorder `gorm:"-"`

	// ID is the unique identifier (uuid) for the breakdown.
	ID string `gorm:"primaryKey;size:36"`
	// OwnerID is the id of the customer owning the vehicle.
	OwnerID string `gorm:"size:36;not null;index" validate:"required"`
	// VehicleID is the id of the affected vehicle.
	VehicleID string `gorm:"size:36;not null;index" validate:"required"`
	// Description is the customer's free-form report of the problem.
	Description string `gorm:"type:text;not null" validate:"required,min=10"`
	// Attachments are the uploaded files linked to this breakdown.
	Attachments []BreakdownAttachment `gorm:"foreignKey:BreakdownID"`
	// CreatedAt is the timestamp when the breakdown was filed (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the breakdown was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the VehicleBreakdown model.
func (VehicleBreakdown) TableName() string {
	return "vehicle_breakdowns"
}

// Excerpt returns the leading part of the description for notification
// titles and log lines. Truncation counts runes so accented text is never
// cut mid-character.
func (b *VehicleBreakdown) Excerpt() string {
	runes := []rune(b.Description)
	if len(runes) <= excerptLen {
		return b.Description
	}

	return strings.TrimRight(string(runes[:excerptLen]), " ") + "..."
}

// NewVehicleBreakdown validates the input and returns a new breakdown with
// a generated id and a queued VehicleBreakdownCreated event. The event is
// only recorded here, on first construction; loading an existing row from
// the database never queues anything.
func NewVehicleBreakdown(ownerID, vehicleID, description string) (*VehicleBreakdown, error) {
	breakdown := &VehicleBreakdown{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		VehicleID:   vehicleID,
		Description: description,
	}

	if err := validate.Struct(breakdown); err != nil {
		return nil, err
	}

	breakdown.Record(NewVehicleBreakdownCreated(breakdown))

	return breakdown, nil
}
