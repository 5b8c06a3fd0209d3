// Package account provides registration and the current user's profile.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

const (
	// Path is the base path for account registration.
	Path = handler.RootPath + "accounts"

	// MePath serves the current user's profile.
	MePath = handler.RootPath + "me"
)

// Service handles account routes.
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

	app.Post(Path, s.Register)
	app.Get(MePath, s.Me)
}

type registerPhone struct {
	Type       models.PhoneType `json:"type"`
	Number     string           `json:"number"`
	IsWhatsapp bool             `json:"isWhatsapp"`
}

type registerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Phones   []registerPhone `json:"phones"`
}

// Register creates a customer account.
func (s *Service) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	phones := make([]erp.RegisterPhone, 0, len(req.Phones))
	for _, p := range req.Phones {
		phones = append(phones, erp.RegisterPhone{
			Type:       p.Type,
			Number:     p.Number,
			IsWhatsapp: p.IsWhatsapp,
		})
	}

	customer, err := s.erp.RegisterCustomer(c.Context(), erp.RegisterCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phones:   phones,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
		"role":  customer.Role,
	})
}

// Me returns the profile of the acting user.
func (s *Service) Me(c *fiber.Ctx) error {
	me, err := s.erp.GetMe(c.Context(), handler.UserID(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":    me.ID,
		"name":  me.Name,
		"email": me.Email,
		"role":  me.Role,
	})
}
