package erp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	attachmentctl "github.com/GeovaneMT/LavaCar/internal/db/controller/attachment"
	breakdownctl "github.com/GeovaneMT/LavaCar/internal/db/controller/breakdown"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// CreateVehicleBreakdownRequest carries the input for filing a breakdown
// report against a vehicle.
type CreateVehicleBreakdownRequest struct {
	CurrentUserID string
	VehicleID     string
	Description   string
	AttachmentIDs []string
}

// CreateVehicleBreakdown files a breakdown report. The report's owner is
// the vehicle's customer, so the CREATE check on the VEHICLE_BREAKDOWN
// subject only passes for that customer or an admin. Every referenced
// attachment must already exist. The created event queued on the aggregate
// is dispatched after the report is persisted.
func (s *Service) CreateVehicleBreakdown(ctx context.Context, req CreateVehicleBreakdownRequest) (*models.VehicleBreakdown, error) {
	vehicle, err := s.findVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	breakdown, err := models.NewVehicleBreakdown(vehicle.CustomerID, vehicle.ID, req.Description)
	if err != nil {
		return nil, err
	}

	subject, err := ability.VehicleBreakdownSubject(breakdown)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: req.CurrentUserID, Action: ability.ActionCreate, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	for _, attachmentID := range req.AttachmentIDs {
		if _, err := s.attachments.FindByID(ctx, attachmentID); err != nil {
			if errors.Is(err, attachmentctl.ErrAttachmentNotFound) {
				return nil, errors.Wrapf(policy.ErrResourceNotFound, "attachment %q", attachmentID)
			}
			return nil, err
		}

		breakdown.Attachments = append(breakdown.Attachments,
			models.NewBreakdownAttachment(breakdown.ID, attachmentID))
	}

	if err := s.breakdowns.Create(ctx, breakdown); err != nil {
		return nil, err
	}

	log.Info().Str("breakdown_id", breakdown.ID).Str("vehicle_id", breakdown.VehicleID).
		Msg("vehicle breakdown filed")

	s.bus.Dispatch(ctx, breakdown)

	return breakdown, nil
}

// ListVehicleBreakdowns returns the reports filed for a vehicle after a GET
// check on a VEHICLE_BREAKDOWN subject scoped to the vehicle's owner.
func (s *Service) ListVehicleBreakdowns(ctx context.Context, currentUserID, vehicleID string) ([]models.VehicleBreakdown, error) {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	check := policy.Check{
		UserID: currentUserID,
		Action: ability.ActionGet,
		Subject: ability.Subject{
			Type:   ability.SubjectVehicleBreakdown,
			Fields: map[string]string{"ownerId": vehicle.CustomerID},
		},
	}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return s.breakdowns.ListByVehicle(ctx, vehicle.ID)
}

// DeleteVehicleBreakdown removes a breakdown report after a DELETE check on
// its subject.
func (s *Service) DeleteVehicleBreakdown(ctx context.Context, currentUserID, breakdownID string) error {
	breakdown, err := s.breakdowns.FindByID(ctx, breakdownID)
	if err != nil {
		if errors.Is(err, breakdownctl.ErrBreakdownNotFound) {
			return errors.Wrapf(policy.ErrResourceNotFound, "vehicle breakdown %q", breakdownID)
		}
		return err
	}

	subject, err := ability.VehicleBreakdownSubject(breakdown)
	if err != nil {
		return err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionDelete, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return err
	}

	if err := s.breakdowns.Delete(ctx, breakdown); err != nil {
		return err
	}

	log.Info().Str("breakdown_id", breakdownID).Msg("vehicle breakdown deleted")

	return nil
}
