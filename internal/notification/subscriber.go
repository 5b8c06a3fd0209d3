package notification

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	vehiclectl "github.com/GeovaneMT/LavaCar/internal/db/controller/vehicle"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/events"
)

// vehicleModelLimit bounds the vehicle model text used in notification
// titles.
const vehicleModelLimit = 40

// OnVehicleBreakdownCreated notifies a vehicle's owner when a breakdown
// report is filed for it.
type OnVehicleBreakdownCreated struct {
	vehicles      *vehiclectl.Store
	notifications *Service
}

// NewOnVehicleBreakdownCreated creates the subscriber.
func NewOnVehicleBreakdownCreated(vehicles *vehiclectl.Store, notifications *Service) *OnVehicleBreakdownCreated {
	return &OnVehicleBreakdownCreated{vehicles: vehicles, notifications: notifications}
}

// Register subscribes the handler on the bus. Called once at bootstrap.
func (h *OnVehicleBreakdownCreated) Register(bus *events.Bus) {
	bus.Register(models.VehicleBreakdownCreatedName, h.handle)
}

func (h *OnVehicleBreakdownCreated) handle(ctx context.Context, event events.Event) error {
	created, ok := event.(*models.VehicleBreakdownCreated)
	if !ok {
		return errors.Errorf("unexpected event payload %T for %q", event, event.EventName())
	}

	vehicle, err := h.vehicles.FindByID(ctx, created.Breakdown.VehicleID)
	if err != nil {
		return errors.Wrapf(err, "vehicle %q", created.Breakdown.VehicleID)
	}

	model := vehicle.Model
	if runes := []rune(model); len(runes) > vehicleModelLimit {
		model = string(runes[:vehicleModelLimit]) + "..."
	}

	_, err = h.notifications.Send(ctx, SendRequest{
		RecipientID:   vehicle.CustomerID,
		RecipientRole: models.RoleCustomer,
		Title:         fmt.Sprintf("New breakdown report for %s", model),
		Content:       created.Breakdown.Excerpt(),
	})

	return err
}
