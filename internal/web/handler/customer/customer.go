// Package customer provides handlers for customer records and their
// vehicles.
package customer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

// Path is the base path for customer records.
const Path = handler.RootPath + "customers"

// Service handles customer routes.
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

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Get(Path+"/:id/vehicles", s.ListVehicles)
	app.Post(Path+"/:id/vehicles", s.CreateVehicle)
}

// List returns all customers. Only admins pass the policy check.
func (s *Service) List(c *fiber.Ctx) error {
	customers, err := s.erp.ListCustomers(c.Context(), handler.UserID(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	out := make([]fiber.Map, 0, len(customers))
	for _, customer := range customers {
		out = append(out, customerJSON(&customer))
	}

	return c.JSON(out)
}

// Get returns one customer record.
func (s *Service) Get(c *fiber.Ctx) error {
	customer, err := s.erp.GetCustomer(c.Context(), handler.UserID(c), c.Params("id"))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(customerJSON(customer))
}

// ListVehicles returns the customer's vehicles.
func (s *Service) ListVehicles(c *fiber.Ctx) error {
	vehicles, err := s.erp.ListCustomerVehicles(c.Context(), handler.UserID(c), c.Params("id"))
	if err != nil {
		return handler.RenderError(c, err)
	}

	out := make([]fiber.Map, 0, len(vehicles))
	for _, vehicle := range vehicles {
		out = append(out, vehicleJSON(&vehicle))
	}

	return c.JSON(out)
}

type createVehicleRequest struct {
	Type  models.VehicleType `json:"type"`
	Plate string             `json:"plate"`
	Model string             `json:"model"`
	Year  string             `json:"year"`
}

// CreateVehicle registers a vehicle under the customer.
func (s *Service) CreateVehicle(c *fiber.Ctx) error {
	var req createVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	vehicle, err := s.erp.CreateCustomerVehicle(c.Context(), erp.CreateCustomerVehicleRequest{
		CurrentUserID: handler.UserID(c),
		CustomerID:    c.Params("id"),
		Type:          req.Type,
		Plate:         req.Plate,
		Model:         req.Model,
		Year:          req.Year,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(vehicleJSON(vehicle))
}

func customerJSON(customer *models.Customer) fiber.Map {
	return fiber.Map{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
		"role":  customer.Role,
	}
}

func vehicleJSON(vehicle *models.CustomerVehicle) fiber.Map {
	return fiber.Map{
		"id":         vehicle.ID,
		"customerId": vehicle.CustomerID,
		"type":       vehicle.Type,
		"plate":      vehicle.Plate,
		"model":      vehicle.Model,
		"year":       vehicle.Year,
	}
}
