package models

import (
	"time"

	"github.com/GeovaneMT/LavaCar/internal/events"
)

// VehicleBreakdownCreatedName is the bus registration key for
// VehicleBreakdownCreated events.
const VehicleBreakdownCreatedName = "vehicle_breakdown.created"

// VehicleBreakdownCreated is raised when a breakdown is filed for the
// first time. Handlers receive the live breakdown captured at creation
// time, not a re-fetched copy.
type VehicleBreakdownCreated struct {
	Breakdown *VehicleBreakdown

	occurredAt time.Time
}

// NewVehicleBreakdownCreated captures the breakdown and stamps the event.
func NewVehicleBreakdownCreated(breakdown *VehicleBreakdown) *VehicleBreakdownCreated {
	return &VehicleBreakdownCreated{
		Breakdown:  breakdown,
		occurredAt: time.Now(),
	}
}

// EventName implements events.Event.
func (e *VehicleBreakdownCreated) EventName() string {
	return VehicleBreakdownCreatedName
}

// OccurredAt implements events.Event.
func (e *VehicleBreakdownCreated) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID implements events.Event.
func (e *VehicleBreakdownCreated) AggregateID() string {
	return e.Breakdown.ID
}

var _ events.Event = (*VehicleBreakdownCreated)(nil)
