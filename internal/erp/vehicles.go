package erp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	customerctl "github.com/GeovaneMT/LavaCar/internal/db/controller/customer"
	vehiclectl "github.com/GeovaneMT/LavaCar/internal/db/controller/vehicle"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// CreateCustomerVehicleRequest carries the input for registering a vehicle
// under a customer.
type CreateCustomerVehicleRequest struct {
	CurrentUserID string
	CustomerID    string
	Type          models.VehicleType
	Plate         string
	Model         string
	Year          string
}

// CreateCustomerVehicle registers a vehicle after a CREATE check on the
// CUSTOMER_VEHICLE subject built from the new record.
func (s *Service) CreateCustomerVehicle(ctx context.Context, req CreateCustomerVehicleRequest) (*models.CustomerVehicle, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerctl.ErrCustomerNotFound) {
			return nil, errors.Wrapf(policy.ErrResourceNotFound, "customer %q", req.CustomerID)
		}
		return nil, err
	}

	vehicle, err := models.NewCustomerVehicle(req.CustomerID, req.Type, req.Plate, req.Model, req.Year)
	if err != nil {
		return nil, err
	}

	subject, err := ability.CustomerVehicleSubject(vehicle)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: req.CurrentUserID, Action: ability.ActionCreate, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	log.Info().Str("vehicle_id", vehicle.ID).Str("customer_id", vehicle.CustomerID).
		Str("plate", vehicle.Plate).Msg("customer vehicle created")

	return vehicle, nil
}

// ListCustomerVehicles returns the vehicles of one customer after a GET
// check on a CUSTOMER_VEHICLE subject scoped to that customer.
func (s *Service) ListCustomerVehicles(ctx context.Context, currentUserID, customerID string) ([]models.CustomerVehicle, error) {
	check := policy.Check{
		UserID: currentUserID,
		Action: ability.ActionGet,
		Subject: ability.Subject{
			Type:   ability.SubjectCustomerVehicle,
			Fields: map[string]string{"customerId": customerID},
		},
	}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return s.vehicles.ListByCustomer(ctx, customerID)
}

func (s *Service) findVehicle(ctx context.Context, vehicleID string) (*models.CustomerVehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehiclectl.ErrVehicleNotFound) {
			return nil, errors.Wrapf(policy.ErrResourceNotFound, "vehicle %q", vehicleID)
		}
		return nil, err
	}

	return vehicle, nil
}
