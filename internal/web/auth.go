package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

// openPaths can be requested without a user id.
var openPaths = map[string]bool{
	"/checkalive": true,
	"/metrics":    true,
	"/accounts":   true,
}

// AuthMiddleware requires the user id header on every route that is not
// open. Whether that user may act on a resource is decided later by the
// policy check of each operation.
func AuthMiddleware(c *fiber.Ctx) error {
	if openPaths[c.Path()] {
		return c.Next()
	}

	userID := c.Get(handler.UserIDHeader)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing " + handler.UserIDHeader + " header",
		})
	}

	c.Locals(handler.UserIDLocal, userID)

	return c.Next()
}
