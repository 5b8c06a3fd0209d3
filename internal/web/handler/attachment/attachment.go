// Package attachment provides handlers for uploaded file records.
package attachment

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

// Path is the base path for attachments.
const Path = handler.RootPath + "attachments"

// Service handles attachment routes.
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

	app.Post(Path, s.Upload)
}

type uploadRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Upload records an uploaded file.
func (s *Service) Upload(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	attachment, err := s.erp.UploadAttachment(c.Context(), erp.UploadAttachmentRequest{
		CurrentUserID: handler.UserID(c),
		Title:         req.Title,
		URL:           req.URL,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    attachment.ID,
		"title": attachment.Title,
		"url":   attachment.URL,
	})
}
