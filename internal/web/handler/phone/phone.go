// Package phone provides handlers for phone records.
package phone

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

// Path is the base path for phone records.
const Path = handler.RootPath + "phones"

// Service handles phone routes.
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
	app.Put(Path+"/:id", s.Edit)
	app.Delete(Path+"/:id", s.Delete)
}

type phoneRequest struct {
	UserID     string           `json:"userId"`
	UserRole   models.Role      `json:"userRole"`
	Type       models.PhoneType `json:"type"`
	Number     string           `json:"number"`
	IsWhatsapp bool             `json:"isWhatsapp"`
}

// Create attaches a phone to a user.
func (s *Service) Create(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	phone, err := s.erp.CreatePhone(c.Context(), erp.CreatePhoneRequest{
		CurrentUserID: handler.UserID(c),
		UserID:        req.UserID,
		UserRole:      req.UserRole,
		Type:          req.Type,
		Number:        req.Number,
		IsWhatsapp:    req.IsWhatsapp,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(phoneJSON(phone))
}

// Edit updates a phone record.
func (s *Service) Edit(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	phone, err := s.erp.EditPhone(c.Context(), erp.EditPhoneRequest{
		CurrentUserID: handler.UserID(c),
		PhoneID:       c.Params("id"),
		Type:          req.Type,
		Number:        req.Number,
		IsWhatsapp:    req.IsWhatsapp,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(phoneJSON(phone))
}

// Delete removes a phone record.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.erp.DeletePhone(c.Context(), handler.UserID(c), c.Params("id")); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func phoneJSON(phone *models.Phone) fiber.Map {
	return fiber.Map{
		"id":         phone.ID,
		"userId":     phone.UserID,
		"userRole":   phone.UserRole,
		"type":       phone.Type,
		"number":     phone.Number,
		"isWhatsapp": phone.IsWhatsapp,
	}
}
