// Package breakdown provides handlers for vehicle breakdown reports.
package breakdown

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

const (
	// Path is the base path for breakdown reports.
	Path = handler.RootPath + "breakdowns"

	// VehiclePath serves the reports filed for one vehicle.
	VehiclePath = handler.RootPath + "vehicles/:id/breakdowns"
)

// Service handles breakdown routes.
type Service struct {
	cfg *config.Config
	erp *erp.Service
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, erpSvc *erp.Service) {
	if app == nil || cfg == nil || erpSvc == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.erp = erpSvc

	app.Post(Path, s.Create)
	app.Delete(Path+"/:id", s.Delete)
	app.Get(VehiclePath, s.ListByVehicle)
}

type createRequest struct {
	VehicleID     string   `json:"vehicleId"`
	Description   string   `json:"description"`
	AttachmentIDs []string `json:"attachmentIds"`
}

// Create files a breakdown report.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	breakdown, err := s.erp.CreateVehicleBreakdown(c.Context(), erp.CreateVehicleBreakdownRequest{
		CurrentUserID: handler.UserID(c),
		VehicleID:     req.VehicleID,
		Description:   req.Description,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(breakdownJSON(breakdown))
}

// ListByVehicle returns the reports filed for a vehicle.
func (s *Service) ListByVehicle(c *fiber.Ctx) error {
	breakdowns, err := s.erp.ListVehicleBreakdowns(c.Context(), handler.UserID(c), c.Params("id"))
	if err != nil {
		return handler.RenderError(c, err)
	}

	out := make([]fiber.Map, 0, len(breakdowns))
	for i := range breakdowns {
		out = append(out, breakdownJSON(&breakdowns[i]))
	}

	return c.JSON(out)
}

// Delete removes a breakdown report.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.erp.DeleteVehicleBreakdown(c.Context(), handler.UserID(c), c.Params("id")); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func breakdownJSON(breakdown *models.VehicleBreakdown) fiber.Map {
	attachmentIDs := make([]string, 0, len(breakdown.Attachments))
	for _, link := range breakdown.Attachments {
		attachmentIDs = append(attachmentIDs, link.AttachmentID)
	}

	return fiber.Map{
		"id":            breakdown.ID,
		"ownerId":       breakdown.OwnerID,
		"vehicleId":     breakdown.VehicleID,
		"description":   breakdown.Description,
		"attachmentIds": attachmentIDs,
	}
}
